package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/adnsv/go-utils/fs"
	cli "github.com/jawher/mow.cli"
	"github.com/shensquared/lyricstamp/model"
	"github.com/shensquared/lyricstamp/stage"
)

type actionFunc = func(outDir, manifestDir, root, configFN string, quiet bool) error

func newApp(action actionFunc) *cli.Cli {
	app := cli.App("lyricstamp-stage", "Stage scripts and templates into the bundle resources")
	app.Version("v version", "lyricstamp-stage "+app_version())
	app.Spec = "[-o=<OUT_DIR>] [-m=<MANIFEST_DIR>] [-r=<ROOT>] [-c=<CONFIG>] [-q]"

	outDir := app.String(cli.StringOpt{
		Name:   "o out-dir",
		EnvVar: "OUT_DIR",
		Desc:   "build output directory, resources are staged below it",
	})
	manifestDir := app.String(cli.StringOpt{
		Name:   "m manifest-dir",
		EnvVar: "CARGO_MANIFEST_DIR",
		Desc:   "directory of the bundler project; its parent is the project root",
	})
	rootDir := app.String(cli.StringOpt{
		Name: "r root",
		Desc: "use this project root instead of the parent of the manifest dir",
	})
	configFN := app.String(cli.StringOpt{
		Name: "c config",
		Desc: "yaml file with the list of assets to stage",
	})
	quiet := app.Bool(cli.BoolOpt{
		Name: "q quiet",
		Desc: "do not report individual copies",
	})

	app.Action = func() {
		if err := action(*outDir, *manifestDir, *rootDir, *configFN, *quiet); err != nil {
			log.Fatal(err)
		}
	}
	return app
}

// run stages the assets of the project into outDir. The project root is
// root when given, otherwise the parent of manifestDir.
func run(outDir, manifestDir, root, configFN string, quiet bool) error {
	s, err := newStager(outDir, manifestDir, root, configFN)
	if err != nil {
		return err
	}
	if quiet {
		s.Logger = log.New(io.Discard, "", 0)
	}

	log.Printf("staging %s -> %s\n", s.Root, s.ResourceDir())
	rep, err := s.Run()
	if err != nil {
		return err
	}
	log.Printf("staged %d, skipped %d\n", len(rep.Copied), len(rep.Skipped))
	return nil
}

func newStager(outDir, manifestDir, root, configFN string) (*stage.Stager, error) {
	if outDir == "" {
		return nil, errors.New("output directory is undefined (set OUT_DIR or use -o)")
	}

	if root == "" {
		var err error
		root, err = model.ProjectRootFromManifestDir(manifestDir)
		if err != nil {
			return nil, err
		}
	}

	m := model.DefaultManifest()
	if configFN != "" {
		if !fs.FileExists(configFN) {
			return nil, errors.New("missing " + configFN)
		}
		var err error
		m, err = model.LoadManifestYaml(configFN)
		if err != nil {
			return nil, err
		}
	}

	return stage.NewStager(root, outDir, m), nil
}

func main() {
	newApp(run).Run(os.Args)
}
