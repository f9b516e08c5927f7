package config

const (
	delimiter = "."

	EnvPrefix = "PRIMES"

	LogPrefix = "log"
	LogLevel  = LogPrefix + delimiter + "level"

	BenchPrefix   = "bench"
	BenchCases    = BenchPrefix + delimiter + "cases"
	BenchFrom     = BenchPrefix + delimiter + "from"
	BenchTo       = BenchPrefix + delimiter + "to"
	BenchVariants = BenchPrefix + delimiter + "variants"

	VerifyPrefix     = "verify"
	VerifyFrom       = VerifyPrefix + delimiter + "from"
	VerifyTo         = VerifyPrefix + delimiter + "to"
	VerifyFixture    = VerifyPrefix + delimiter + "fixture"
	VerifyBound      = VerifyPrefix + delimiter + "bound"
	VerifyWorkers    = VerifyPrefix + delimiter + "workers"
	VerifyBufferSize = VerifyPrefix + delimiter + "buffer_size"
)
