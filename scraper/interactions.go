package scraper

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Step is a best-effort UI interaction performed before extraction.
type Step struct {
	Name     string
	Selector string
	Click    bool   // click after the selector appears, otherwise only wait
	Requires string // name of an earlier step that must have succeeded
}

// DefaultSteps returns the interactions needed on an Airbnb listing page.
func DefaultSteps(withAmenities bool) []Step {
	steps := []Step{
		{Name: "dismiss cookie banner", Selector: CookieBannerButtonSelector, Click: true},
	}
	if withAmenities {
		steps = append(steps,
			Step{Name: "open amenities", Selector: AmenitiesButtonSelector, Click: true},
			Step{Name: "wait for amenities panel", Selector: AmenitiesPanelSelector, Requires: "open amenities"},
		)
	}
	return steps
}

// Sequencer runs interaction steps against a page, each bounded by timeout.
type Sequencer struct {
	steps   []Step
	timeout time.Duration
	logger  *zap.Logger
}

func NewSequencer(steps []Step, timeout time.Duration, logger *zap.Logger) *Sequencer {
	return &Sequencer{steps: steps, timeout: timeout, logger: logger}
}

// Run performs every step in order and returns the names of the steps that
// failed. A failed step never stops the sequence.
func (s *Sequencer) Run(ctx context.Context, page Page) []string {
	var failed []string
	done := make(map[string]bool, len(s.steps))

	for _, step := range s.steps {
		if step.Requires != "" && !done[step.Requires] {
			s.logger.Info("Skipping interaction step",
				zap.String("step", step.Name),
				zap.String("requires", step.Requires),
			)
			failed = append(failed, step.Name)
			continue
		}

		if err := s.runStep(ctx, page, step); err != nil {
			s.logger.Warn("Interaction step failed", zap.String("step", step.Name), zap.Error(err))
			failed = append(failed, step.Name)
			continue
		}
		done[step.Name] = true
	}

	return failed
}

func (s *Sequencer) runStep(ctx context.Context, page Page, step Step) error {
	if err := page.WaitVisible(ctx, step.Selector, s.timeout); err != nil {
		return fmt.Errorf("%w: %s after %v: %v", ErrInteractionTimeout, step.Selector, s.timeout, err)
	}
	if !step.Click {
		return nil
	}
	if err := page.Click(ctx, step.Selector, s.timeout); err != nil {
		return fmt.Errorf("click %s: %w", step.Selector, err)
	}
	return nil
}
