package augur

import (
	"fmt"

	httpHelper "github.com/AugurML/augur-client/pkg/api/http"
	"github.com/spf13/viper"
)

const (
	// ProtocolGRPC selects the gRPC binding.
	ProtocolGRPC = "grpc"
	// ProtocolHTTP selects the HTTP/REST binding.
	ProtocolHTTP = "http"

	// DefaultTimeoutInMs bounds every infer call when no timeout is
	// configured.
	DefaultTimeoutInMs = 10_000

	protocolSuffix    = "_PROTOCOL"
	plainTextSuffix   = "_GRPC_PLAIN_TEXT"
	callerIDSuffix    = "_CALLER_ID"
	callerTokenSuffix = "_CALLER_TOKEN"
)

// Config holds everything a binding needs to reach the server.
type Config struct {
	Host        string
	Port        string
	TimeoutInMs int
	Protocol    string
	PlainText   bool
	CallerId    string
	CallerToken string
}

// newConfig reads the client configuration from viper keys carrying
// the given env prefix, e.g. AUGUR_CLIENT_V1_HOST.
func newConfig(envPrefix string) *Config {
	config := &Config{
		TimeoutInMs: DefaultTimeoutInMs,
		Protocol:    ProtocolGRPC,
	}
	config.Host = viper.GetString(envPrefix + httpHelper.Host)
	config.Port = viper.GetString(envPrefix + httpHelper.Port)
	if viper.IsSet(envPrefix + httpHelper.Timeout) {
		config.TimeoutInMs = viper.GetInt(envPrefix + httpHelper.Timeout)
	}
	if viper.IsSet(envPrefix + protocolSuffix) {
		config.Protocol = viper.GetString(envPrefix + protocolSuffix)
	}
	config.PlainText = viper.GetBool(envPrefix + plainTextSuffix)
	config.CallerId = viper.GetString(envPrefix + callerIDSuffix)
	config.CallerToken = viper.GetString(envPrefix + callerTokenSuffix)
	return config
}

func validConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("augur client config is nil")
	}
	if config.Host == "" {
		return fmt.Errorf("augur server host is invalid, configured value: %q", config.Host)
	}
	if config.Port == "" {
		return fmt.Errorf("augur server port is invalid, configured value: %q", config.Port)
	}
	if config.TimeoutInMs <= 0 {
		return fmt.Errorf("augur client timeout is invalid, configured value: %v", config.TimeoutInMs)
	}
	if config.Protocol != ProtocolGRPC && config.Protocol != ProtocolHTTP {
		return fmt.Errorf("augur client protocol must be %q or %q, configured value: %q",
			ProtocolGRPC, ProtocolHTTP, config.Protocol)
	}
	return nil
}
