package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/xenartist/memo-token/cmd"
)

//go:embed README.md
var README string

//go:embed VERSION
var VERSION string

func main() {
	VERSION = strings.TrimSpace(VERSION)
	app := &cli.App{
		Name:                 "memo-token",
		Usage:                "Memo Token",
		Version:              VERSION,
		EnableBashCompletion: true,
		Metadata: map[string]any{
			"README":  README,
			"VERSION": VERSION,
		},
		Commands: []*cli.Command{
			{
				Name:   "genesis",
				Usage:  "Initialize the mint, counters and leaderboards",
				Action: cmd.GenesisBootCmd,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Value:   "~/.memo/token/config.toml",
						Usage:   "The configuration file path",
					},
				},
			},
			{
				Name:   "encodememo",
				Usage:  "Encode a payload into the transport envelope",
				Action: cmd.EncodeMemoCmd,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "amount",
						Aliases: []string{"a"},
						Value:   "0",
						Usage:   "The declared token amount",
					},
					&cli.StringFlag{
						Name:    "payload",
						Aliases: []string{"p"},
						Usage:   "The inner payload",
					},
				},
			},
			{
				Name:   "decodememo",
				Usage:  "Decode a transport envelope",
				Action: cmd.DecodeMemoCmd,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "data",
						Aliases: []string{"d"},
						Usage:   "The Base64 memo text",
					},
				},
			},
			{
				Name:   "leaderboard",
				Usage:  "Show a domain leaderboard sorted by burned amount",
				Action: cmd.LeaderboardCmd,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Value:   "~/.memo/token/config.toml",
						Usage:   "The configuration file path",
					},
					&cli.StringFlag{
						Name:  "domain",
						Value: "project",
						Usage: "The leaderboard domain",
					},
				},
			},
			{
				Name:   "events",
				Usage:  "Show the most recent events of a category",
				Action: cmd.EventsCmd,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Value:   "~/.memo/token/config.toml",
						Usage:   "The configuration file path",
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "The event category",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 100,
						Usage: "The maximum events count",
					},
				},
			},
			{
				Name:   "account",
				Usage:  "Show a user token balance and burn stats",
				Action: cmd.AccountCmd,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Value:   "~/.memo/token/config.toml",
						Usage:   "The configuration file path",
					},
					&cli.StringFlag{
						Name:    "user",
						Aliases: []string{"u"},
						Usage:   "The user public key",
					},
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
	}
}
