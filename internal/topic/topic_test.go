// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package topic

import (
	"testing"

	"github.com/pdiddy/replication-scout/internal/catalog"
)

func mustGet(t *testing.T, name string) catalog.Discipline {
	t.Helper()
	d, err := catalog.Get(name)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestClassifyEconomics(t *testing.T) {
	econ := mustGet(t, "economics")

	tests := []struct {
		name     string
		title    string
		abstract string
		want     string
	}{
		{
			"macro paper",
			"Monetary Policy Shocks and the Business Cycle",
			"We study how central bank decisions propagate through inflation expectations.",
			"macroeconomics",
		},
		{
			"labor paper",
			"Minimum Wage Effects on Employment",
			"Using matched employer-employee data we estimate wage and employment responses in the labor market.",
			"labor_economics",
		},
		{
			"environmental via flagship keyword",
			"Climate Change and Agricultural Yields",
			"Climate change exposure is measured at the county level.",
			"environmental_economics",
		},
		{
			"no match falls back",
			"On the Geometry of Hilbert Spaces",
			"Purely abstract mathematics.",
			"general_economics",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.title, tt.abstract, econ); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestClassifyFlagshipOutweighsPlainKeyword(t *testing.T) {
	fin := mustGet(t, "finance")

	// "volatility" (derivatives, plain) appears once; "liquidity"
	// (market_microstructure, flagship) also appears once but counts
	// double.
	got := Classify("Liquidity and Volatility", "", fin)
	if got != "market_microstructure" {
		t.Errorf("Classify = %q, want flagship keyword to dominate", got)
	}
}

func TestClassifyDeterministicOnTie(t *testing.T) {
	psych := mustGet(t, "psychology")

	// "anxiety" (clinical) and "attention" (cognitive) both occur once,
	// neither is flagship; the alphabetically first topic wins every run.
	title := "Anxiety and Attention"
	want := Classify(title, "", psych)
	for i := 0; i < 10; i++ {
		if got := Classify(title, "", psych); got != want {
			t.Fatalf("run %d: Classify = %q, previous runs produced %q", i, got, want)
		}
	}
	if want != "clinical_psychology" {
		t.Errorf("Classify = %q, want the alphabetically first tied topic", want)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	econ := mustGet(t, "economics")
	if got := Classify("", "", econ); got != "general_economics" {
		t.Errorf("Classify(empty) = %q, want the fallback", got)
	}
}
