package augur

import (
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	Version1 = 1

	// V1Prefix is the env prefix the v1 client reads its configuration
	// from, e.g. AUGUR_CLIENT_V1_HOST.
	V1Prefix = "AUGUR_CLIENT_V1"
)

var (
	registry = make(map[int]Client)
	onceMap  = make(map[int]*sync.Once)
	regMutex sync.Mutex
)

// InitClient initialises the client for the given version from viper
// configuration and registers it. Repeat calls return the already
// registered client. It panics on invalid configuration.
func InitClient(version int) Client {
	return InitClientWithConfig(version, nil)
}

// InitClientWithConfig is InitClient with an explicit config, for
// callers that do not configure through the environment. A nil conf
// falls back to the env prefix for the version.
func InitClientWithConfig(version int, conf *Config) Client {
	regMutex.Lock()
	if _, exists := onceMap[version]; !exists {
		onceMap[version] = &sync.Once{}
	}
	once := onceMap[version]
	regMutex.Unlock()

	once.Do(func() {
		client := buildClient(version, conf)
		regMutex.Lock()
		registry[version] = client
		regMutex.Unlock()
	})
	return GetInstance(version)
}

func GetInstance(version int) Client {
	regMutex.Lock()
	client := registry[version]
	regMutex.Unlock()
	if client == nil {
		log.Panic().Msgf("Augur client for version %d not initialised", version)
	}
	return client
}

func buildClient(version int, conf *Config) Client {
	envPrefix := envPrefixFor(version)
	if conf == nil {
		conf = newConfig(envPrefix)
	}
	switch conf.Protocol {
	case ProtocolHTTP:
		return NewHTTPClient(conf, envPrefix)
	default:
		return NewGRPCClient(conf, envPrefix)
	}
}

func envPrefixFor(version int) string {
	switch version {
	case Version1:
		return V1Prefix
	default:
		log.Panic().Msgf("No augur client defined for version %d", version)
		return ""
	}
}
