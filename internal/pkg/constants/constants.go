package constants

const (
	ViperKeyListenAddr      = "listen_addr"
	ViperKeyUpstreamBaseURL = "upstream_base_url"
	ViperKeyUpstreamTimeout = "upstream_timeout"
	ViperKeyCacheStaleTime  = "cache_stale_time"
	ViperKeyRetryCount      = "retry_count"
	ViperKeyRetryWait       = "retry_wait"
	ViperKeyLogLevel        = "log_level"
	ViperKeyAllowOrigins    = "allow_origins"

	EnvPrefix = "ROOMREPORT"
)

type ctxKey string

const CtxKeyRequestID ctxKey = "request_id"
