package momo

// Environment is the value sent in the X-Target-Environment header. The
// sandbox accepts only "sandbox"; production deployments use the market
// name assigned by the provider.
type Environment string

const (
	EnvironmentSandbox       Environment = "sandbox"
	EnvironmentBenin         Environment = "mtnbenin"
	EnvironmentCameroon      Environment = "mtncameroon"
	EnvironmentCongo         Environment = "mtncongo"
	EnvironmentGhana         Environment = "mtnghana"
	EnvironmentGuineaConakry Environment = "mtnguineaconakry"
	EnvironmentIvoryCoast    Environment = "mtnivorycoast"
	EnvironmentLiberia       Environment = "mtnliberia"
	EnvironmentSouthAfrica   Environment = "mtnsouthafrica"
	EnvironmentSwaziland     Environment = "mtnswaziland"
	EnvironmentUganda        Environment = "mtnuganda"
	EnvironmentZambia        Environment = "mtnzambia"
)

// Common currencies across the provider's markets. The sandbox only settles
// in EUR.
const (
	CurrencyEUR = "EUR"
	CurrencyUGX = "UGX"
	CurrencyGHS = "GHS"
	CurrencyZAR = "ZAR"
	CurrencyZMW = "ZMW"
	CurrencyXAF = "XAF"
	CurrencyXOF = "XOF"
	CurrencyLRD = "LRD"
	CurrencySZL = "SZL"
)
