/* main.go
 * The "main" method for running the bracket bot. The same bracket engine can be used from the command line, as a
 * discord bot or as an HTTP service
 * Usage: go run . -mode=cli -bracket="A B + C D + +" -metas
 */

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"bracket-bot/api/api"
	"bracket-bot/api/team"
	"bracket-bot/bot"
	"bracket-bot/config"
	"bracket-bot/web"
)

// defaultRoster is registered when ROSTER is not set
const defaultRoster = "Roark:0,2,1,1,1;Gardenia:0,0,2,0,1;Maylene:6,0,0,0,0;Crasher_Wake:0,2,0,1,0;" +
	"Fantina:0,0,1,1,1;Byron:0,2,0,0,1;Candice:2,2,1,0,0;Volkner:0,5,0,0,0"

// options are the command line flags
type options struct {
	mode    string
	bracket string
	metas   bool
}

// parseFlags reads the command line flags from args, which excludes the program name
func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("bracket-bot", flag.ContinueOnError)
	fs.StringVar(&opts.mode, "mode", "cli", "How to run: cli, bot or web")
	fs.StringVar(&opts.bracket, "bracket", "", "Bracket to play in cli mode, e.g. \"A B + C D + +\"")
	fs.BoolVar(&opts.metas, "metas", false, "Show trending kinds for each match in cli mode")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	a, err := buildAPI(cfg)
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}

	switch opts.mode {
	case "cli":
		if err := runCLI(a, opts.bracket, opts.metas, os.Stdout); err != nil {
			log.Fatal(err)
		}

	case "bot":
		b, err := bot.NewBot(cfg.DiscordToken, a, cfg.RateLimit, cfg.RateBurst)
		if err != nil {
			log.Fatalf("failed to create bot: %v", err)
		}
		if err := b.Run(); err != nil {
			log.Fatal(err)
		}

	case "web":
		if err := web.Start(web.Config{Addr: cfg.HTTPAddr, API: a}); err != nil {
			log.Fatal(err)
		}

	default:
		log.Fatalf("invalid \"mode\" flag %q. Should be cli, bot or web", opts.mode)
	}
}

// buildAPI registers the configured roster with the configured ordering strategy
// Preconditions: Receives the loaded config
// Postconditions: Returns the API or an error if the roster or ordering could not be parsed
func buildAPI(cfg config.Config) (*api.API, error) {
	rosterStr := cfg.Roster
	if rosterStr == "" {
		rosterStr = defaultRoster
	}
	roster, err := api.ParseRoster(rosterStr)
	if err != nil {
		return nil, err
	}
	strategy, err := team.ParseStrategy(cfg.Ordering, cfg.SortCriterion)
	if err != nil {
		return nil, err
	}
	return api.NewAPI(roster, strategy, nil)
}

// runCLI plays bracket and writes the matches to out
func runCLI(a *api.API, bracket string, metas bool, out io.Writer) error {
	if bracket == "" {
		return fmt.Errorf("no bracket given, use -bracket=\"A B + C D + +\"")
	}

	run := a.RunBracket
	if metas {
		run = a.RunBracketWithMetas
	}
	lines, err := run(bracket)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, api.FormatMatches(lines))
	return err
}
