package client

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	krbclient "github.com/jcmturner/gokrb5/v8/client"
	krbconfig "github.com/jcmturner/gokrb5/v8/config"
	"github.com/jcmturner/gokrb5/v8/credentials"
	"github.com/jcmturner/gokrb5/v8/spnego"

	"github.com/cookscheduler/jobclient/pkg/errors"
)

const defKrb5Config = "/etc/krb5.conf"

// doer is the slice of http.Client both auth modes give us.
type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// newAuthClient builds the HTTP client for the configured auth mode.
//
// http_basic returns a plain client; credentials are attached per request.
// kerberos wraps the client in a SPNEGO negotiator fed from the ambient
// krb5 config & credential cache - the negotiation itself is entirely
// delegated to gokrb5.
func newAuthClient(opts *Options) (doer, error) {
	base := &http.Client{Timeout: opts.RequestTimeout}

	switch opts.Auth {
	case AuthBasic:
		if opts.HTTPUser == "" || opts.HTTPPassword == "" {
			return nil, errors.ErrMissingCredentials
		}
		return base, nil
	case AuthKerberos:
		krb, err := newKerberosClient(opts)
		if err != nil {
			return nil, err
		}
		return spnego.NewClient(krb, base, ""), nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedAuth, opts.Auth)
	}
}

func newKerberosClient(opts *Options) (*krbclient.Client, error) {
	cfgPath := opts.KerberosConfig
	if cfgPath == "" {
		cfgPath = defKrb5Config
	}
	cfg, err := krbconfig.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", cfgPath, err)
	}

	cc, err := credentials.LoadCCache(ccachePath(opts))
	if err != nil {
		return nil, fmt.Errorf("loading credential cache: %w", err)
	}

	return krbclient.NewFromCCache(cc, cfg, krbclient.DisablePAFXFAST(true))
}

func ccachePath(opts *Options) string {
	if opts.KerberosCCache != "" {
		return opts.KerberosCCache
	}
	if env := os.Getenv("KRB5CCNAME"); env != "" {
		return strings.TrimPrefix(env, "FILE:")
	}
	return fmt.Sprintf("/tmp/krb5cc_%d", os.Getuid())
}
