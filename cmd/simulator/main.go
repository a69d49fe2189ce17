package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katiapek/CompoundingSimulator/internal/config"
	"github.com/katiapek/CompoundingSimulator/internal/simulation"
)

const (
	AppName    = "Compounding Simulator"
	AppVersion = "1.0.0"

	// Default values
	DefaultBalance = 1000.0
	DefaultRisk    = 0.02
	DefaultWinRate = 0.4
	DefaultPayoff  = 2.0
	DefaultTrades  = 10
	DefaultPeriods = 12
	DefaultCycles  = 30
)

func main() {
	flags := NewSimulatorFlags()
	flag.Parse()

	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}

	if err := ValidateFlags(flags); err != nil {
		log.Fatalf("❌ Flag validation error: %v", err)
	}

	printHeader()
	loadEnvironment(*flags.EnvFile)

	// Scenario file first, explicit flags on top
	var fileParams *simulation.Parameters
	if *flags.ConfigFile != "" {
		loaded, err := config.LoadScenario(*flags.ConfigFile)
		if err != nil {
			log.Fatalf("❌ Configuration error: %v", err)
		}
		fileParams = &loaded
	}
	params := flags.Parameters(fileParams)

	result, err := simulation.Run(params)
	if err != nil {
		log.Fatalf("❌ Simulation error: %v", err)
	}

	if err := outputResult(result, flags); err != nil {
		log.Fatalf("❌ Output error: %v", err)
	}
}

func printHeader() {
	fmt.Printf("💸 %s v%s\n", strings.ToUpper(AppName), AppVersion)
	fmt.Printf("%s\n\n", strings.Repeat("=", 50))
}

func loadEnvironment(envFile string) {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("⚠️  Could not load %s (%v), using defaults", envFile, err)
	}
}
