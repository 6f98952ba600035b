package core

import (
	"sync"

	"github.com/spf13/afero"
	"go.hacdias.com/signpost/log"
	"go.uber.org/zap"
)

type Core struct {
	cfg *Config
	log *zap.SugaredLogger

	buildMu sync.Mutex

	// sourceFS is rooted at the working directory and holds the redirects
	// file. outFS is rooted at the output directory.
	sourceFS *afero.Afero
	outFS    *afero.Afero

	fetcher *Fetcher
}

func NewCore(cfg *Config) *Core {
	return &Core{
		cfg:      cfg,
		log:      log.S(),
		sourceFS: &afero.Afero{Fs: afero.NewOsFs()},
		outFS:    &afero.Afero{Fs: afero.NewBasePathFs(afero.NewOsFs(), cfg.OutDirectory)},
		fetcher:  NewFetcher(cfg),
	}
}
