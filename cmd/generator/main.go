package main

import (
	"math/rand/v2"

	"github.com/limaJavier/superstring/pkg/superstring"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	strings   int
	maxLength int
	output    string
	seed      uint64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatalf("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:           "generator",
		Short:         "Writes random binary strings, one per line, to be used as superstring input",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(logrus.New())
		},
	}

	cmd.Flags().IntVarP(&o.strings, "num-of-strings", "n", 0, "number of strings to generate, between 2 and 99")
	cmd.Flags().IntVarP(&o.maxLength, "max-length", "m", 0, "maximum length of the strings, between 3 and 99")
	cmd.Flags().StringVarP(&o.output, "output", "o", "input.txt", "file the strings are written to")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "seed for the random generator, 0 picks a random seed")
	_ = cmd.MarkFlagRequired("num-of-strings")
	_ = cmd.MarkFlagRequired("max-length")

	return cmd
}

func (o *options) run(logger *logrus.Logger) error {
	seed := o.seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	input, err := superstring.GenerateInput(rand.New(rand.NewPCG(seed, seed)), o.strings, o.maxLength)
	if err != nil {
		return err
	}
	if err := superstring.WriteInput(o.output, input); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"strings": len(input.Strings),
		"longest": input.LongestLength,
		"total":   input.TotalLength,
		"seed":    seed,
	}).Infof("input written to %v", o.output)
	return nil
}
