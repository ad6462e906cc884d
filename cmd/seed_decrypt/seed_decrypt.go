// Command seed_decrypt decrypts a single 128-bit block given as base-10 ciphertext and key arguments, printing the
// base-10 plaintext.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/codahale/seed"
	"github.com/urfave/cli"
)

// The block decrypted when no arguments are given.
const (
	sampleCiphertext = "326047834325964202684570978412317521344"
	sampleKey        = "7059"
)

var errUsage = errors.New("expected CIPHERTEXT and KEY, or no arguments")

func main() {
	log := slog.New(slog.Default().Handler())

	if err := newApp(log).Run(os.Args); err != nil {
		log.Error("failed to decrypt", "err", err)
		os.Exit(1)
	}
}

func newApp(log *slog.Logger) *cli.App {
	app := cli.NewApp()
	app.Name = "seed_decrypt"
	app.Usage = "decrypt a 128-bit block with the two-round SEED Feistel network"
	app.ArgsUsage = "[CIPHERTEXT KEY]"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "legacy",
			EnvVar: "SEED_LEGACY",
			Usage:  "reproduce historical outputs computed without masking [experimental]",
		},
		cli.IntFlag{
			Name:   "rounds",
			EnvVar: "SEED_ROUNDS",
			Value:  seed.DefaultRounds,
			Usage:  fmt.Sprintf("number of Feistel rounds, 1 to %d [experimental]", seed.MaxRounds),
		},
	}
	app.Action = func(ctx *cli.Context) error {
		return decrypt(ctx, log)
	}
	return app
}

func decrypt(ctx *cli.Context, log *slog.Logger) error {
	ctString, keyString := sampleCiphertext, sampleKey
	switch ctx.NArg() {
	case 0:
	case 2:
		ctString, keyString = ctx.Args().Get(0), ctx.Args().Get(1)
	default:
		return errUsage
	}

	ciphertext, err := seed.ParseBlock(ctString)
	if err != nil {
		return fmt.Errorf("ciphertext: %w", err)
	}

	key, err := seed.ParseKey(keyString)
	if err != nil {
		return fmt.Errorf("key: %w", err)
	}

	rounds := ctx.Int("rounds")
	legacy := ctx.Bool("legacy")
	log.Debug("decrypting", "rounds", rounds, "legacy", legacy)

	var plaintext seed.Block
	if legacy {
		plaintext, err = seed.DecryptRoundsLegacy(ciphertext, key, rounds)
	} else {
		plaintext, err = seed.DecryptRounds(ciphertext, key, rounds)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, plaintext)
	return err
}
