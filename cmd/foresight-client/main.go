// cmd/foresight-client/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"foresight/internal/common/config"
	"foresight/internal/common/logger"
	"foresight/internal/models"
	"foresight/internal/twin/builder"
	"foresight/internal/twin/client"
	"foresight/internal/twin/session"
)

func main() {
	form := builder.FormValues{}
	var months int

	flag.StringVar(&form.Age, "age", "", "current age in years")
	flag.StringVar(&form.TenureMonths, "tenure", "", "job tenure in months")
	flag.BoolVar(&form.RemoteWork, "remote", false, "works remotely")
	flag.StringVar(&form.Education, "education", "", "education level")
	flag.StringVar(&form.Location, "location", "", "location category")
	flag.StringVar(&form.Title, "title", "", "current job title")
	flag.StringVar(&form.Industry, "industry", "", "industry")
	flag.StringVar(&form.AvgSleepHours, "sleep", "", "average sleep hours per night")
	flag.IntVar(&months, "months", int(models.HorizonTwoYears), "projection horizon in months (6, 24 or 60)")
	flag.Parse()
	form.Horizon = models.Horizon(months)

	zapLog := logger.New("warn", "console")
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	log := logger.NewZapAdapter(zapLog)
	predictor := client.New(client.FromTwinConfig(cfg.Twin), log)
	sess := session.New(predictor, log)

	if err := sess.Submit(context.Background(), form); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	snap := sess.Snapshot()
	if snap.State == session.StateFailure {
		fmt.Fprintln(os.Stderr, snap.Outcome.FailureMessage)
		os.Exit(1)
	}

	f := snap.Outcome.Forecast
	fmt.Printf("Projected age:    %d\n", f.ProjectedAge)
	fmt.Printf("Health increase:  %.1f%%\n", f.HealthIncreasePercent)
	fmt.Printf("Predicted salary: %s\n", f.PredictedSalary)
	fmt.Printf("Recommended jobs: %v\n", f.RecommendedJobs)
	fmt.Printf("Horizon (months): %d\n", f.TimeProjectionMonths)
}
