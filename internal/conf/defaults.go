package conf

import "github.com/spf13/viper"

// setDefaults registers the default configuration values. Every key that
// Settings can carry has a default so a bare install works without a config
// file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)

	v.SetDefault("birdnet.dir", "/home/pi/BirdNET-Pi")
	v.SetDefault("birdnet.dbpath", "")

	v.SetDefault("models.dir", "/opt/vocalization-go/models")
	v.SetDefault("models.cachesize", DefaultModelCacheSize)

	v.SetDefault("poller.interval", DefaultPollInterval)
	v.SetDefault("poller.batchsize", DefaultBatchSize)
	v.SetDefault("poller.minconfidence", DefaultMinConfidence)

	v.SetDefault("output.datadir", "/opt/vocalization-go/data")

	v.SetDefault("web.enabled", true)
	v.SetDefault("web.address", ":8090")

	v.SetDefault("language", "en")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", true)
}
