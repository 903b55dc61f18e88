package adapty

// SDKName identifies this package to the native SDK as the
// cross-platform SDK in use.
const SDKName = "go"

// SDKVersion is the version reported alongside SDKName.
const SDKVersion = "0.1.0"

// LogLevel is the verbosity of the native SDK's logs.
type LogLevel string

const (
	LogError   LogLevel = "error"
	LogWarn    LogLevel = "warn"
	LogInfo    LogLevel = "info"
	LogVerbose LogLevel = "verbose"
)

// ServerCluster selects the backend region the SDK talks to.
type ServerCluster string

const (
	ClusterDefault ServerCluster = "default"
	ClusterEU      ServerCluster = "eu"
	ClusterCN      ServerCluster = "cn"
)

// MediaCache configures the paywall media cache.
type MediaCache struct {
	MemoryStorageTotalCostLimit *int64 `wire:"memory_storage_total_cost_limit"`
	MemoryStorageCountLimit     *int64 `wire:"memory_storage_count_limit"`
	DiskStorageSizeLimit        *int64 `wire:"disk_storage_size_limit"`
}

// DefaultMediaCache returns the media cache limits used when none are
// configured.
func DefaultMediaCache() MediaCache {
	total, count, disk := int64(100*1024*1024), int64(2147483647), int64(100*1024*1024)
	return MediaCache{
		MemoryStorageTotalCostLimit: &total,
		MemoryStorageCountLimit:     &count,
		DiskStorageSizeLimit:        &disk,
	}
}

// Configuration are the parameters used to activate the SDK.
type Configuration struct {
	APIKey                 string                `wire:"api_key,required"`
	SDKName                string                `wire:"cross_platform_sdk_name,required"`
	SDKVersion             string                `wire:"cross_platform_sdk_version,required"`
	CustomerUserID         *string               `wire:"customer_user_id"`
	ObserverMode           bool                  `wire:"observer_mode,required"`
	IPAddressCollectionOff bool                  `wire:"ip_address_collection_disabled,required"`
	LogLevel               *LogLevel             `wire:"log_level"`
	ServerCluster          ServerCluster         `wire:"server_cluster,required"`
	BackendBaseURL         *string               `wire:"backend_base_url"`
	BackendFallbackBaseURL *string               `wire:"backend_fallback_base_url"`
	BackendConfigsBaseURL  *string               `wire:"backend_configs_base_url"`
	BackendUABaseURL       *string               `wire:"backend_ua_base_url"`
	BackendProxyHost       *string               `wire:"backend_proxy_host"`
	BackendProxyPort       *int                  `wire:"backend_proxy_port"`
	ActivateUI             bool                  `wire:"activate_ui,required"`
	MediaCache             MediaCache            `wire:"media_cache,required"`
	IOS                    *ConfigurationIOS     `wire:",ios"`
	Android                *ConfigurationAndroid `wire:",android"`
}

type ConfigurationIOS struct {
	IDFACollectionOff bool    `wire:"apple_idfa_collection_disabled,required"`
	AppAccountToken   *string `wire:"customer_identity_parameters.app_account_token"`
}

type ConfigurationAndroid struct {
	AdIDCollectionOff   bool    `wire:"google_adid_collection_disabled,required"`
	ObfuscatedAccountID *string `wire:"customer_identity_parameters.obfuscated_account_id"`
}

// NewConfiguration returns the Configuration for apiKey, with every
// other parameter at its default.
func NewConfiguration(apiKey string) Configuration {
	return Configuration{
		APIKey:        apiKey,
		SDKName:       SDKName,
		SDKVersion:    SDKVersion,
		ServerCluster: ClusterDefault,
		ActivateUI:    true,
		MediaCache:    DefaultMediaCache(),
	}
}

// ReplacementMode is how an Android subscription change takes effect.
type ReplacementMode string

const (
	ReplaceChargeFullPrice     ReplacementMode = "charge_full_price"
	ReplaceDeferred            ReplacementMode = "deferred"
	ReplaceWithoutProration    ReplacementMode = "without_proration"
	ReplaceChargeProratedPrice ReplacementMode = "charge_prorated_price"
	ReplaceWithTimeProration   ReplacementMode = "with_time_proration"
)

// PurchaseParams are the optional parameters of a purchase. Only
// Android consumes any of them.
type PurchaseParams struct {
	Android *PurchaseParamsAndroid `wire:",android"`
}

type PurchaseParamsAndroid struct {
	// OldSubVendorProductID and ReplacementMode describe the
	// subscription being replaced, and must be set together.
	OldSubVendorProductID *string          `wire:"subscription_update_params.old_sub_vendor_product_id"`
	ReplacementMode       *ReplacementMode `wire:"subscription_update_params.replacement_mode"`
	IsOfferPersonalized   *bool            `wire:"is_offer_personalized"`
	ObfuscatedAccountID   *string          `wire:"obfuscated_account_id"`
	ObfuscatedProfileID   *string          `wire:"obfuscated_profile_id"`
}

// IdentifyParams are the platform-specific parameters of identifying
// a user.
type IdentifyParams struct {
	IOS     *IdentifyParamsIOS     `wire:",ios"`
	Android *IdentifyParamsAndroid `wire:",android"`
}

type IdentifyParamsIOS struct {
	AppAccountToken *string `wire:"app_account_token"`
}

type IdentifyParamsAndroid struct {
	ObfuscatedAccountID *string `wire:"obfuscated_account_id"`
}

// DialogConfig describes a dialog shown over a paywall or onboarding.
type DialogConfig struct {
	PrimaryActionTitle   string  `wire:"default_action_title,required"`
	SecondaryActionTitle *string `wire:"secondary_action_title"`
	Title                *string `wire:"title"`
	Content              *string `wire:"content"`
}

// DialogAction is the dialog button a user tapped.
type DialogAction string

const (
	DialogPrimary   DialogAction = "primary"
	DialogSecondary DialogAction = "secondary"
)
