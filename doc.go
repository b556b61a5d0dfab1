// Package rsample provides resampling infrastructure for statistical model
// evaluation in Go: reusable train/test index partitions over a tabular
// dataset, generated by v-fold cross-validation, bootstrap, Monte-Carlo,
// leave-one-out and rolling-origin strategies.
//
// Splits are index sets, never copied data — every split shares one
// immutable source table and materializes its analysis and assessment
// sub-tables lazily. A generic evaluation driver maps a user function over
// every split of a set and attaches the collected results back as a column.
//
// # Quick start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/shuesler/rsample/resample"
//	    "github.com/shuesler/rsample/table"
//	    "gonum.org/v1/gonum/stat"
//	)
//
//	func main() {
//	    tbl, err := table.New(
//	        table.Float("y", 2.1, 4.0, 6.2, 7.9, 10.1, 12.0, 14.2, 15.8, 18.1, 20.0),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    folds, err := resample.VFoldCV(tbl, 5, resample.WithSeed(42))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    results, err := resample.Map(folds, func(s *resample.Split) (any, error) {
//	        analysis, err := s.Analysis()
//	        if err != nil {
//	            return nil, err
//	        }
//	        y, err := analysis.Float("y")
//	        if err != nil {
//	            return nil, err
//	        }
//	        return stat.Mean(y, nil), nil
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    means, _ := resample.UnwrapFloat64(results)
//	    fmt.Println("per-fold analysis means:", means)
//	}
//
// # Packages
//
//   - table: the in-memory tabular dataset partitioned by the strategies
//   - resample: splits, strategy generators, resample sets, evaluation driver
//   - core/parallel: chunked and order-preserving worker helpers
//   - pkg/errors: structured errors and the warning system
//   - pkg/log: structured logging setup and standard attribute keys
package rsample
