package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-b backend base URL
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-backend-timeout outbound backend call timeout
//	-health-timeout backend health probe timeout
//	-health-interval backend health poll interval
//	-rpm backend-bound requests allowed per minute per client
//	-burst backend-bound request burst size per client
//	-session-ttl idle browser session lifetime
//	-session-cleanup expired session sweep interval
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var backendURL string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var backendTimeout time.Duration
	var healthTimeout time.Duration
	var healthInterval time.Duration
	var requestsPerMinute int
	var burst int
	var sessionTTL time.Duration
	var sessionCleanup time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&backendURL, "b", "", "Backend base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&backendTimeout, "backend-timeout", 0, "Backend call timeout (e.g., 30s, 1m)")
	flag.DurationVar(&healthTimeout, "health-timeout", 0, "Backend health probe timeout (e.g., 5s)")
	flag.DurationVar(&healthInterval, "health-interval", 0, "Backend health poll interval (e.g., 30s)")
	flag.IntVar(&requestsPerMinute, "rpm", 0, "Backend-bound requests per minute per client")
	flag.IntVar(&burst, "burst", 0, "Backend-bound request burst per client")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Idle session lifetime (e.g., 2h)")
	flag.DurationVar(&sessionCleanup, "session-cleanup", 0, "Expired session sweep interval (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Backend: Backend{
			BaseURL:        backendURL,
			RequestTimeout: backendTimeout,
			HealthTimeout:  healthTimeout,
		},
		Limits: Limits{
			RequestsPerMinute: requestsPerMinute,
			Burst:             burst,
		},
		Sessions: Sessions{
			TTL:             sessionTTL,
			CleanupInterval: sessionCleanup,
		},
		Workers: Workers{
			HealthInterval: healthInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
