package utils

import (
	"bytes"
	"errors"
	"testing"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/stretchr/testify/assert"
)

func TestDrawOptimizationSteps(t *testing.T) {
	steps := []model.OptimizationStep{
		{Phase: 1, Title: "Resizing oversized VMs", Resource: "vm-web", Message: "vm-web: resize A -> B",
			Change: &model.CostChange{OldCost: 140.16, NewCost: 70.08}},
		{Phase: 2, Title: "Optimizing storage tiers", Resource: "st-backup", Err: errors.New("resource not found: st-backup")},
		{Phase: 2, Title: "Optimizing storage tiers", Resource: "st-other", Message: "nothing to do"},
	}

	var buf bytes.Buffer
	DrawOptimizationSteps(&buf, steps)
	out := buf.String()

	assert.Contains(t, out, "1. Resizing oversized VMs")
	assert.Contains(t, out, "$70.08")
	assert.Contains(t, out, "resource not found: st-backup")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Optimizing storage tiers")))
}

func TestDrawCostComparison(t *testing.T) {
	var buf bytes.Buffer
	DrawCostComparison(&buf, model.CostComparison{Before: 1339.678, After: 1194.18})

	out := buf.String()
	assert.Contains(t, out, "$1339.68/month")
	assert.Contains(t, out, "$145.50")
	assert.Contains(t, out, "10.9%")
	assert.Contains(t, out, "$1745.98")
}
