package main

import (
	"fmt"
	"log"

	"github.com/huseyinbabal/benchmarks/adapters/hasher"
	"github.com/huseyinbabal/benchmarks/adapters/http"
	"github.com/huseyinbabal/benchmarks/adapters/metrics"
	"github.com/huseyinbabal/benchmarks/usecase"
	"github.com/subosito/gotenv"
)

func main() {
	gotenv.Load()

	hashService := usecase.NewHashService(hasher.New())
	handler := http.NewBenchHandler(hashService)

	// Losing the metrics listener must not take down the workload under test.
	go func() {
		if err := metrics.ListenAndServe(":2112"); err != nil {
			log.Printf("metrics server stopped: %v", err)
		}
	}()

	e := http.NewRouter(handler)

	fmt.Println("Echo server starting on :8080")
	log.Fatal(e.Start(":8080"))
}
