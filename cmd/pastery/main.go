package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/tombowditch/pastery-cli/client"
	"github.com/tombowditch/pastery-cli/internal/config"
	"github.com/tombowditch/pastery-cli/internal/duration"
	"github.com/tombowditch/pastery-cli/internal/language"
)

var (
	apiKeyFlag = &cli.StringFlag{
		Name:     "api-key",
		Usage:    "your Pastery API key (see https://www.pastery.net/account/)",
		Sources:  cli.EnvVars(config.APIKeyEnv),
		Required: true,
	}
	langFlag = &cli.StringFlag{
		Name:  "lang",
		Usage: "the alias of the programming language the paste is written in",
		Value: config.DefaultLang,
	}
	durationFlag = &cli.StringFlag{
		Name:  "duration",
		Usage: "how long the paste lives before it is deleted (e.g. 30m, 2d, 1mo)",
		Value: config.DefaultDuration,
	}
	titleFlag = &cli.StringFlag{
		Name:  "title",
		Usage: "the title of the paste",
	}
	maxViewsFlag = &cli.UintFlag{
		Name:  "max-views",
		Usage: "expire the paste after this many views",
	}
	baseURLFlag = &cli.StringFlag{
		Name:  "base-url",
		Usage: "Pastery service URL",
		Value: client.DefaultBaseURL,
	}
	timeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Usage: "HTTP client timeout",
		Value: client.DefaultTimeout,
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "enable debug logging",
	}
)

func main() {
	cmd := &cli.Command{
		Name:      "pastery",
		Usage:     "upload a file or stdin to Pastery",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			apiKeyFlag,
			langFlag,
			durationFlag,
			titleFlag,
			maxViewsFlag,
			baseURLFlag,
			timeoutFlag,
			verboseFlag,
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool(verboseFlag.Name) {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if cmd.Args().Len() > 1 {
		return fmt.Errorf("expected at most one path argument, got %d", cmd.Args().Len())
	}

	dur, err := duration.Parse(cmd.String(durationFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}

	lang := language.Resolve(cmd.String(langFlag.Name))
	if raw := cmd.String(langFlag.Name); raw != lang {
		logrus.WithFields(logrus.Fields{"alias": raw, "resolved": lang}).
			Debug("language alias resolved")
	}

	path := cmd.Args().First()
	body, err := readBody(path)
	if err != nil {
		return err
	}

	c := client.New(cmd.String(apiKeyFlag.Name),
		client.WithBaseURL(cmd.String(baseURLFlag.Name)),
		client.WithTimeout(cmd.Duration(timeoutFlag.Name)),
	)

	logrus.WithFields(logrus.Fields{
		"language": lang,
		"duration": dur,
		"bytes":    len(body),
	}).Debug("creating paste")

	paste, err := c.Create(ctx, body, client.CreateOptions{
		Language: lang,
		Duration: dur,
		Title:    cmd.String(titleFlag.Name),
		MaxViews: uint32(cmd.Uint(maxViewsFlag.Name)),
		Path:     path,
	})
	if err != nil {
		return err
	}

	fmt.Println(paste.URL)
	return nil
}

// readBody reads the paste body from the named file, or from stdin when
// no path is given.
func readBody(path string) ([]byte, error) {
	if path == "" {
		body, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return body, nil
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return body, nil
}
