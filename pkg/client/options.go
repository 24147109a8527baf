package client

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/cookscheduler/jobclient/pkg/structs"
)

const (
	defBatchRequestSize     = 32
	defStatusUpdateInterval = 10 * time.Second
	defRequestTimeout       = 60 * time.Second
)

// AuthMode selects how requests to the scheduler are authenticated.
type AuthMode string

const (
	// AuthBasic sends HTTP basic credentials (HTTPUser / HTTPPassword).
	AuthBasic AuthMode = "http_basic"

	// AuthKerberos negotiates via SPNEGO using the ambient kerberos
	// config & credential cache.
	AuthKerberos AuthMode = "kerberos"
)

// Options passed to the job client on creation.
type Options struct {
	// URL is the scheduler's base endpoint, eg. "https://cook.example.com:12321"
	URL string

	// Auth is the authentication mode to use (http_basic or kerberos).
	Auth AuthMode

	// HTTPUser / HTTPPassword are the credentials sent when Auth is http_basic.
	HTTPUser     string
	HTTPPassword string

	// KerberosConfig is the path to krb5.conf. Defaults to /etc/krb5.conf.
	KerberosConfig string

	// KerberosCCache is the path to the kerberos credential cache.
	// Defaults to $KRB5CCNAME, then /tmp/krb5cc_<uid>.
	KerberosCCache string

	// BatchRequestSize caps how many job UUIDs we pack into a single
	// query / delete request before splitting into multiple requests.
	BatchRequestSize int

	// StatusUpdateInterval is how long Wait sleeps between polls.
	StatusUpdateInterval time.Duration

	// RequestTimeout bounds each individual HTTP request.
	RequestTimeout time.Duration

	// DefaultJobSettings are merged into submitted specs; a field set
	// here applies to any spec that leaves it zero.
	DefaultJobSettings *structs.JobSpec

	// Logger, when set, receives per-request debug logging.
	Logger *zerolog.Logger
}

// OptionsDefault returns Options with the defaults the scheduler's own
// tooling uses: batches of 32, 10s polling, 60s request timeout and a
// single allowed launch per job.
func OptionsDefault() *Options {
	return &Options{
		Auth:                 AuthBasic,
		BatchRequestSize:     defBatchRequestSize,
		StatusUpdateInterval: defStatusUpdateInterval,
		RequestTimeout:       defRequestTimeout,
		DefaultJobSettings:   &structs.JobSpec{MaxRetries: 1},
	}
}

// sanitize fills zero fields with defaults, in place.
func (o *Options) sanitize() {
	if o.BatchRequestSize <= 0 {
		o.BatchRequestSize = defBatchRequestSize
	}
	if o.StatusUpdateInterval <= 0 {
		o.StatusUpdateInterval = defStatusUpdateInterval
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = defRequestTimeout
	}
}
