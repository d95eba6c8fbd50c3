package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Versifine/spacee/internal/logger"
)

// logLevelFlag overrides logging.level from the config file when set.
type logLevelFlag struct {
	value string
}

func (l *logLevelFlag) String() string {
	return l.value
}

func (l *logLevelFlag) Set(value string) error {
	v := strings.ToLower(value)
	if !logger.ValidLevel(v) {
		return fmt.Errorf("unknown log level %q", value)
	}
	l.value = v
	return nil
}

// defined flags
var (
	levelFlag    logLevelFlag
	configFlag   = flag.String("config", "configs/config.yaml", "path to the YAML config file")
	frontendFlag = flag.String("frontend", "", "auto, terminal, window or headless (overrides the config)")
	framesFlag   = flag.Uint64("frames", 0, "stop after this many frames; headless runs them as fast as possible")
)

func init() {
	flag.Var(&levelFlag, "loglevel", "set log level (debug, info, warn, error)")
}
