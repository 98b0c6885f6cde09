package conf

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gostonefire/collisionbench/crt"
	"github.com/gostonefire/collisionbench/internal/hash"
	"github.com/gostonefire/collisionbench/internal/report"
	"github.com/gostonefire/collisionbench/internal/utils"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix - Prefix of environment variables overriding configuration keys, e.g. COLLISIONBENCH_SEED
const EnvPrefix = "COLLISIONBENCH"

// Configuration keys
const (
	KeyConfigFile     = "config"
	KeyTableSizes     = "table_sizes"
	KeyRecordCounts   = "record_counts"
	KeyLoadFactor     = "load_factor"
	KeyPrimeCapacity  = "prime_capacity"
	KeySeed           = "seed"
	KeyCodeMin        = "code_min"
	KeyCodeSpan       = "code_span"
	KeyStrategies     = "strategies"
	KeyHashes         = "hashes"
	KeyWorkers        = "workers"
	KeyOutputPath     = "output.path"
	KeyCompression    = "output.compression"
	KeyLogLevel       = "log_level"
	KeyMetricsEnabled = "metrics.enabled"
	KeyMetricsAddress = "metrics.address"
)

// Output compression formats
const (
	CompressionNone = report.CompressionNone
	CompressionGzip = report.CompressionGzip
	CompressionZstd = report.CompressionZstd
)

// Config - Benchmark configuration
//   - TableSizes and RecordCounts span the benchmark matrix
//   - LoadFactor grows a table to at least records * LoadFactor buckets, PrimeCapacity rounds that up to a prime
//   - Seed, CodeMin and CodeSpan drive record generation, codes are drawn from [CodeMin, CodeMin+CodeSpan)
//   - Strategies are crt constants and Hashes primary hash names, every combination is run per matrix cell
//   - Workers is the number of runs of one matrix cell executed concurrently
type Config struct {
	TableSizes     []int64
	RecordCounts   []int64
	LoadFactor     float64
	PrimeCapacity  bool
	Seed           int64
	CodeMin        int64
	CodeSpan       int64
	Strategies     []int
	Hashes         []string
	Workers        int
	OutputPath     string
	Compression    string
	LogLevel       string
	MetricsEnabled bool
	MetricsAddress string
}

// SetDefaults - Registers the default configuration
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTableSizes, []string{"1000", "10000", "100000"})
	v.SetDefault(KeyRecordCounts, []string{"100000", "1000000", "10000000"})
	v.SetDefault(KeyLoadFactor, 1.5)
	v.SetDefault(KeyPrimeCapacity, false)
	v.SetDefault(KeySeed, 42)
	v.SetDefault(KeyCodeMin, 100000000)
	v.SetDefault(KeyCodeSpan, 900000000)
	v.SetDefault(KeyStrategies, []string{"separate_chaining", "quadratic_probing", "double_hashing"})
	v.SetDefault(KeyHashes, []string{hash.MultiplicativeName})
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyOutputPath, "resultado_hash.csv")
	v.SetDefault(KeyCompression, CompressionNone)
	v.SetDefault(KeyLogLevel, "INFO")
	v.SetDefault(KeyMetricsEnabled, false)
	v.SetDefault(KeyMetricsAddress, "localhost:8125")
}

// NewFlagSet - Returns the command line flags that can override configuration keys
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String(KeyConfigFile, "", "path to a YAML configuration file")
	flags.String(KeyOutputPath, "", "path of the CSV report")
	flags.Int(KeyWorkers, 0, "number of strategy runs executed concurrently")
	flags.String(KeyLogLevel, "", "log level (DEBUG, INFO, WARN, ERROR)")

	return flags
}

// Load - Builds the configuration from defaults, an optional config file, environment variables and flags,
// in increasing order of precedence.
//   - flags is a parsed flag set from NewFlagSet, or nil
func Load(flags *pflag.FlagSet) (config Config, err error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var configFile string
	if flags != nil {
		// Only flags actually given on the command line take precedence
		flags.Visit(func(f *pflag.Flag) {
			if f.Name == KeyConfigFile {
				configFile = f.Value.String()
				return
			}
			_ = v.BindPFlag(f.Name, f)
		})
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		err = v.ReadInConfig()
		if err != nil {
			err = fmt.Errorf("error while reading config file %s: %w", configFile, err)
			return
		}
	}

	return FromViper(v)
}

// FromViper - Converts and validates the configuration held by v
func FromViper(v *viper.Viper) (config Config, err error) {
	config = Config{
		LoadFactor:     v.GetFloat64(KeyLoadFactor),
		PrimeCapacity:  v.GetBool(KeyPrimeCapacity),
		Seed:           v.GetInt64(KeySeed),
		CodeMin:        v.GetInt64(KeyCodeMin),
		CodeSpan:       v.GetInt64(KeyCodeSpan),
		Workers:        v.GetInt(KeyWorkers),
		OutputPath:     v.GetString(KeyOutputPath),
		Compression:    strings.ToLower(v.GetString(KeyCompression)),
		LogLevel:       v.GetString(KeyLogLevel),
		MetricsEnabled: v.GetBool(KeyMetricsEnabled),
		MetricsAddress: v.GetString(KeyMetricsAddress),
	}

	config.TableSizes, err = positiveList(KeyTableSizes, v.GetStringSlice(KeyTableSizes))
	if err != nil {
		return
	}
	config.RecordCounts, err = positiveList(KeyRecordCounts, v.GetStringSlice(KeyRecordCounts))
	if err != nil {
		return
	}

	for _, key := range splitList(v.GetStringSlice(KeyStrategies)) {
		technique, ok := crt.Parse(strings.ToLower(key))
		if !ok {
			err = fmt.Errorf("unknown strategy %q in %s", key, KeyStrategies)
			return
		}
		config.Strategies = append(config.Strategies, technique)
	}
	if len(config.Strategies) == 0 {
		err = fmt.Errorf("%s must name at least one strategy", KeyStrategies)
		return
	}

	for _, name := range splitList(v.GetStringSlice(KeyHashes)) {
		name = strings.ToLower(name)
		if _, err = hash.GetPrimary(name); err != nil {
			err = fmt.Errorf("invalid %s: %w", KeyHashes, err)
			return
		}
		config.Hashes = append(config.Hashes, name)
	}
	if len(config.Hashes) == 0 {
		err = fmt.Errorf("%s must name at least one hash function", KeyHashes)
		return
	}

	err = config.validate()

	return
}

// Capacity - Returns the table capacity used for a matrix cell, the larger of tableSize and
// records * LoadFactor, optionally rounded up to the nearest prime
func (C Config) Capacity(tableSize, records int64) (capacity int64) {
	capacity = max(tableSize, int64(float64(records)*C.LoadFactor))
	if C.PrimeCapacity {
		capacity = utils.NearestPrime(capacity)
	}

	return
}

// validate - Checks the scalar settings
func (C Config) validate() (err error) {
	switch {
	case C.LoadFactor < 0:
		err = fmt.Errorf("%s must not be negative", KeyLoadFactor)
	case C.CodeMin < 0:
		err = fmt.Errorf("%s must not be negative", KeyCodeMin)
	case C.CodeSpan <= 0:
		err = fmt.Errorf("%s must be a positive value higher than 0 (zero)", KeyCodeSpan)
	case C.CodeMin > math.MaxInt64-C.CodeSpan:
		err = fmt.Errorf("%s + %s overflows", KeyCodeMin, KeyCodeSpan)
	case C.Workers < 1:
		err = fmt.Errorf("%s must be at least 1", KeyWorkers)
	case C.OutputPath == "":
		err = fmt.Errorf("%s can not be empty", KeyOutputPath)
	case C.Compression != CompressionNone && C.Compression != CompressionGzip && C.Compression != CompressionZstd:
		err = fmt.Errorf("%s must be one of %s, %s or %s", KeyCompression, CompressionNone, CompressionGzip, CompressionZstd)
	case C.MetricsEnabled && C.MetricsAddress == "":
		err = fmt.Errorf("%s can not be empty when metrics are enabled", KeyMetricsAddress)
	}
	if err != nil {
		return
	}

	if _, err = zerolog.ParseLevel(strings.ToLower(C.LogLevel)); err != nil {
		err = fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}

	return
}

// splitList - Flattens list entries that themselves hold comma separated values, as environment variables do
func splitList(entries []string) (list []string) {
	for _, entry := range entries {
		for _, item := range strings.Split(entry, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				list = append(list, item)
			}
		}
	}

	return
}

// positiveList - Parses a list of positive integers
func positiveList(key string, entries []string) (list []int64, err error) {
	for _, item := range splitList(entries) {
		var n int64
		n, err = strconv.ParseInt(item, 10, 64)
		if err != nil {
			err = fmt.Errorf("invalid value %q in %s: %w", item, key, err)
			return
		}
		if n <= 0 {
			err = fmt.Errorf("values in %s must be positive, got %d", key, n)
			return
		}
		list = append(list, n)
	}

	if len(list) == 0 {
		err = fmt.Errorf("%s must hold at least one value", key)
	}

	return
}
