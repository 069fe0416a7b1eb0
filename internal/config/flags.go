package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-s remote cipher server address used by the terminal client
//	-c/-config json file path with configs
//	-version reported application version
//	-history-limit size of the rolling history (negative keeps everything)
//	-history-ttl maximum age of a history entry (e.g. "1h")
//	-retention-interval how often old history entries are evicted
//	-request-timeout server request timeout (e.g. "30s")
//	-adapter-timeout client request timeout (e.g. "5s")
//	-log-file terminal client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("cipher-lab", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var adapterAddress string
	var jsonConfigPath string
	var version string
	var historyLimit int
	var historyTTL time.Duration
	var retentionInterval time.Duration
	var requestTimeout time.Duration
	var adapterTimeout time.Duration
	var logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Remote cipher server address")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "version", "", "Application version")
	fs.IntVar(&historyLimit, "history-limit", 0, "History size (negative keeps everything)")
	fs.DurationVar(&historyTTL, "history-ttl", 0, "Maximum age of a history entry (e.g., 1h)")
	fs.DurationVar(&retentionInterval, "retention-interval", 0, "History retention interval (e.g., 1m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 5s)")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:      version,
			HistoryLimit: historyLimit,
			LogFile:      logFile,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			HistoryTTL:        historyTTL,
			RetentionInterval: retentionInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
