package planner

import (
	"context"
	"time"

	"github.com/limaJavier/sectionplanner/pkg/catalog"
	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/rs/zerolog"
)

// Plan is the outcome of a generation request: the resolved options and the combinations built from them
type Plan struct {
	Options      []model.CourseOption
	Combinations []model.ScheduleCombination
}

func (plan Plan) Response() model.Response {
	return model.BuildResponse(plan.Combinations, plan.Options)
}

func (plan Plan) Verify() bool {
	return model.Verify(plan.Combinations, plan.Options)
}

// Service resolves a selection of sections and generates its conflict-free combinations
type Service struct {
	resolver  catalog.Resolver
	generator model.CombinationGenerator
	logger    zerolog.Logger
}

func NewService(resolver catalog.Resolver, generator model.CombinationGenerator, logger zerolog.Logger) *Service {
	return &Service{
		resolver:  resolver,
		generator: generator,
		logger:    logger,
	}
}

// Cancelling ctx stops the enumeration itself, including long stretches where every candidate is being filtered out
func (service *Service) Generate(ctx context.Context, sectionIds []uint64) (Plan, error) {
	start := time.Now()

	options, err := service.resolver.Resolve(ctx, sectionIds)
	if err != nil {
		return Plan{}, err
	}

	combinations, err := service.generator.GenerateContext(ctx, options)
	if err != nil {
		return Plan{}, err
	}

	service.logger.Info().
		Int("sections", len(sectionIds)).
		Int("options", len(options)).
		Int("combinations", len(combinations)).
		Dur("elapsed", time.Since(start)).
		Msg("combinations generated")

	return Plan{
		Options:      options,
		Combinations: combinations,
	}, nil
}
