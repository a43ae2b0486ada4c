package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ixilminiussi/multithreading-learning/demo/count"
	"github.com/ixilminiussi/multithreading-learning/demo/hello"
	"github.com/ixilminiussi/multithreading-learning/demo/matrix"
	"github.com/ixilminiussi/multithreading-learning/demo/sumtable"
	"github.com/ixilminiussi/multithreading-learning/restaurant"
)

// This program runs small concurrency demonstrations, then simulates
// restaurant where customers, waiters, cooks and chief work concurrently
// until every customer has been served.
func main() {
	log := restaurant.NewLogger()

	if err := run(context.Background(), log); err != nil {
		log.WithError(err).Error("simulation failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logrus.Logger) error {
	if err := hello.Parallel(os.Stdout, 3); err != nil {
		return fmt.Errorf("hello: %w", err)
	}

	fmt.Println()

	if err := multiplyMatrices(ctx); err != nil {
		return fmt.Errorf("matrix: %w", err)
	}

	if err := sumTable(ctx); err != nil {
		return fmt.Errorf("sum of table: %w", err)
	}

	fmt.Print("Count (parallel): ")
	count.Parallel(os.Stdout, 1000)
	fmt.Print("\n\n")

	r, err := restaurant.New(restaurant.OptLogger(log))
	if err != nil {
		return err
	}

	if err := r.Initialize(); err != nil {
		return err
	}

	return r.Close(ctx)
}

func multiplyMatrices(ctx context.Context) error {
	a, err := matrix.FromRows([]float64{1, 2, 3, 4})
	if err != nil {
		return err
	}

	b, err := matrix.FromRows([]float64{4}, []float64{5}, []float64{6}, []float64{7})
	if err != nil {
		return err
	}

	fmt.Printf("Matrix A:\n%v\nMatrix B:\n%v\n", a, b)

	seq, err := matrix.Sequential(a, b)
	if err != nil {
		return err
	}

	par, err := matrix.Parallel(ctx, a, b)
	if err != nil {
		return err
	}

	fmt.Printf("A x B (sequential):\n%v\nA x B (parallel):\n%v\n", seq, par)

	return nil
}

func sumTable(ctx context.Context) error {
	table := []float64{4, 12, 35, -44, -125, 675, 70, 8, 19, 45, 531, -678, 1, -1, 0, 1005, 32, -53}

	fmt.Printf("Table: %v\n", table)
	fmt.Printf("Sum (sequential): %v\n", sumtable.Sequential(table))

	sum, err := sumtable.Parallel(ctx, table, 9)
	if err != nil {
		return err
	}

	fmt.Printf("Sum (parallel): %v\n", sum)

	sum, err = sumtable.ParallelMutex(ctx, table, 5)
	if err != nil {
		return err
	}

	fmt.Printf("Sum (parallel mutex): %v\n\n", sum)

	return nil
}
