package globals

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/storecat/pkg/constants"
	"github.com/agentstation/storecat/pkg/errors"
)

// Flag names of the pipeline overrides.
const (
	FlagReleaseCutoff    = "release-cutoff"
	FlagSnapshotCutoff   = "snapshot-cutoff"
	FlagMinPriceNewGen   = "min-price-new-gen"
	FlagMinPricePrevGen  = "min-price-prev-gen"
	FlagMinPriceAddOn    = "min-price-addon"
	FlagPremiumPrice     = "premium-price"
	FlagBasePriceCeiling = "base-price-ceiling"
	FlagWorkers          = "workers"
	FlagHeuristics       = "heuristics"
)

// PipelineFlags holds the flags that override pipeline configuration.
type PipelineFlags struct {
	ReleaseCutoff    string
	SnapshotCutoff   string
	MinPriceNewGen   float64
	MinPricePrevGen  float64
	MinPriceAddOn    float64
	PremiumPrice     float64
	BasePriceCeiling float64
	Workers          int
	HeuristicsFile   string
}

// Targets points at the configuration values the pipeline flags
// override. Nil targets are skipped.
type Targets struct {
	ReleaseCutoff    *time.Time
	SnapshotCutoff   *time.Time
	MinPriceNewGen   *float64
	MinPricePrevGen  *float64
	MinPriceAddOn    *float64
	PremiumPrice     *float64
	BasePriceCeiling *float64
	Workers          *int
	HeuristicsFile   *string
}

// AddPipelineFlags adds the pipeline override flags to the root command.
func AddPipelineFlags(cmd *cobra.Command) *PipelineFlags {
	flags := &PipelineFlags{}
	fs := cmd.PersistentFlags()

	fs.StringVar(&flags.ReleaseCutoff, FlagReleaseCutoff, "",
		"Oldest release date kept, YYYY-MM-DD")
	fs.StringVar(&flags.SnapshotCutoff, FlagSnapshotCutoff, "",
		"Snapshot capture time, YYYY-MM-DDTHH:MM:SS")
	fs.Float64Var(&flags.MinPriceNewGen, FlagMinPriceNewGen, 0,
		"Base-price floor for new-generation games (negative excludes them)")
	fs.Float64Var(&flags.MinPricePrevGen, FlagMinPricePrevGen, 0,
		"Base-price floor for previous-generation games (negative excludes them)")
	fs.Float64Var(&flags.MinPriceAddOn, FlagMinPriceAddOn, 0,
		"Base-price floor for add-ons (negative excludes them)")
	fs.Float64Var(&flags.PremiumPrice, FlagPremiumPrice, 0,
		"Price from which the wider first-record gap applies")
	fs.Float64Var(&flags.BasePriceCeiling, FlagBasePriceCeiling, 0,
		"Base price above which the deals history must corroborate it")
	fs.IntVar(&flags.Workers, FlagWorkers, 0,
		"Documents extracted concurrently (0 = GOMAXPROCS)")
	fs.StringVar(&flags.HeuristicsFile, FlagHeuristics, "",
		"YAML file overriding the detection heuristics")

	return flags
}

// Apply copies the flags the user set on cmd onto t.
func (p *PipelineFlags) Apply(cmd *cobra.Command, t Targets) error {
	fs := cmd.Flags()

	if fs.Changed(FlagReleaseCutoff) && t.ReleaseCutoff != nil {
		v, err := time.Parse(constants.DateLayout, p.ReleaseCutoff)
		if err != nil {
			return errors.WrapValidation(FlagReleaseCutoff, err)
		}
		*t.ReleaseCutoff = v
	}
	if fs.Changed(FlagSnapshotCutoff) && t.SnapshotCutoff != nil {
		v, err := time.Parse(constants.SnapshotLayout, p.SnapshotCutoff)
		if err != nil {
			return errors.WrapValidation(FlagSnapshotCutoff, err)
		}
		*t.SnapshotCutoff = v
	}

	floats := []struct {
		name string
		src  float64
		dst  *float64
	}{
		{FlagMinPriceNewGen, p.MinPriceNewGen, t.MinPriceNewGen},
		{FlagMinPricePrevGen, p.MinPricePrevGen, t.MinPricePrevGen},
		{FlagMinPriceAddOn, p.MinPriceAddOn, t.MinPriceAddOn},
		{FlagPremiumPrice, p.PremiumPrice, t.PremiumPrice},
		{FlagBasePriceCeiling, p.BasePriceCeiling, t.BasePriceCeiling},
	}
	for _, f := range floats {
		if fs.Changed(f.name) && f.dst != nil {
			*f.dst = f.src
		}
	}

	if fs.Changed(FlagWorkers) && t.Workers != nil {
		if p.Workers < 0 {
			return errors.NewValidationError(FlagWorkers, p.Workers, "must not be negative")
		}
		*t.Workers = p.Workers
	}
	if fs.Changed(FlagHeuristics) && t.HeuristicsFile != nil {
		*t.HeuristicsFile = p.HeuristicsFile
	}
	return nil
}
