package main

import (
	"encoding/json"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/cookscheduler/jobclient/pkg/client"
)

const docMain = `Cook is a CLI for a Cook-style job scheduler.

It submits, queries, deletes, retries, lists and waits on jobs via the
scheduler's REST API. It holds no state of its own.`

type optsGeneral struct {
	URL string `long:"url" env:"COOK_URL" default:"http://localhost:12321" description:"Scheduler base endpoint"`

	Auth string `long:"auth" env:"COOK_AUTH" default:"http_basic" choice:"http_basic" choice:"kerberos" description:"Authentication mode"`

	HTTPUser     string `long:"http-user" env:"COOK_HTTP_USER" description:"User for http_basic auth"`
	HTTPPassword string `long:"http-password" env:"COOK_HTTP_PASSWORD" description:"Password for http_basic auth"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

func (c *optsGeneral) newClient() (*client.Client, error) {
	opts := client.OptionsDefault()
	opts.URL = c.URL
	opts.Auth = client.AuthMode(c.Auth)
	opts.HTTPUser = c.HTTPUser
	opts.HTTPPassword = c.HTTPPassword

	if c.Debug {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		opts.Logger = &log
	}

	return client.New(opts)
}

// output prints the result of a command as indented JSON.
func output(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	parser := flags.NewNamedParser("cook", flags.Default)
	parser.LongDescription = docMain

	parser.AddCommand("submit", docSubmit, docSubmit, &optsSubmit{})
	parser.AddCommand("query", docQuery, docQuery, &optsQuery{})
	parser.AddCommand("delete", docDelete, docDelete, &optsDelete{})
	parser.AddCommand("retry", docRetry, docRetry, &optsRetry{})
	parser.AddCommand("list", docList, docList, &optsList{})
	parser.AddCommand("wait", docWait, docWait, &optsWait{})

	if _, err := parser.Parse(); err != nil {
		switch flagsErr := err.(type) {
		case *flags.Error:
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		default:
			os.Exit(1)
		}
	}
}
