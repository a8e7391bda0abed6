package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"legal-research-assistant/internal/intent"
	"legal-research-assistant/internal/research"
	"legal-research-assistant/internal/search"
	"legal-research-assistant/pkg/datemath"
	pkgLog "legal-research-assistant/pkg/log"
)

const defaultCacheSize = 256

type implUseCase struct {
	l          pkgLog.Logger
	classifier *intent.Classifier
	optimizer  *search.Optimizer
	dateMath   *datemath.Parser
	cache      *lru.Cache[string, research.PlanOutput]
}

// New creates a new research UseCase instance. The dateMath parser is
// optional; without it relative time-range phrases are simply not resolved.
func New(
	l pkgLog.Logger,
	classifier *intent.Classifier,
	optimizer *search.Optimizer,
	dateMath *datemath.Parser,
	cacheSize int,
) *implUseCase {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, _ := lru.New[string, research.PlanOutput](cacheSize)

	return &implUseCase{
		l:          l,
		classifier: classifier,
		optimizer:  optimizer,
		dateMath:   dateMath,
		cache:      cache,
	}
}
