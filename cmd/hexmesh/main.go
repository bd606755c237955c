// Command hexmesh reconstructs hexahedral cells from a 3D point cloud.
//
// The reconstruct subcommand loads a point set, runs the three-stage
// pipeline (adjacency graph, quad faces, hexahedra), prints a summary,
// and can export the result as a Wavefront OBJ file.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hexmesh",
		Short:         "Hexahedral cell reconstruction from 3D point clouds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log per-stage counts and timings")
	root.AddCommand(newReconstructCmd())

	return root
}

// newLogger returns the stage logger: info level when --verbose is set,
// warnings only otherwise.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	return log
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hexmesh:", err)
		os.Exit(1)
	}
}
