package config

import (
	"errors"
	"strings"
	"time"

	"github.com/dense-identity/domainselection/internal/prefstore"
	"github.com/dense-identity/domainselection/internal/telephony"
)

// DaemonConfig configures domainselectiond.
type DaemonConfig struct {
	GrpcAddr         string        `env:"GRPC_ADDR" envDefault:":50061"`
	HTTPAddr         string        `env:"HTTP_ADDR" envDefault:":9464"`
	ModemCount       int           `env:"MODEM_COUNT" envDefault:"1"`
	CarrierConfigDir string        `env:"CARRIER_CONFIG_DIR"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	Verbose          bool          `env:"VERBOSE" envDefault:"false"`

	Prefs     prefstore.Config
	Resources telephony.ResourceConfig
}

// Normalize fixes up addresses given as a bare port and checks ranges.
func (c *DaemonConfig) Normalize() error {
	if c == nil {
		return errors.New("nil daemon config")
	}
	if c.ModemCount < 1 {
		return errors.New("MODEM_COUNT must be at least 1")
	}
	c.GrpcAddr = withColon(c.GrpcAddr)
	c.HTTPAddr = withColon(c.HTTPAddr)
	return nil
}

func withColon(addr string) string {
	if addr == "" || strings.Contains(addr, ":") {
		return addr
	}
	return ":" + addr
}
