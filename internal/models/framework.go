package models

import "fmt"

// SectionSpec names one heading of the fixed analysis framework.
type SectionSpec struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Marker returns the numbered heading the model is instructed to emit,
// e.g. "5) Problem Statement".
func (s SectionSpec) Marker() string {
	return fmt.Sprintf("%d) %s", s.Index, s.Label)
}

// SectionCount is the number of headings in the framework.
const SectionCount = 12

var frameworkSections = [SectionCount]SectionSpec{
	{Index: 0, Key: "tldr", Label: "TL;DR"},
	{Index: 1, Key: "analogy", Label: "Analogy"},
	{Index: 2, Key: "worked-example", Label: "Worked Example"},
	{Index: 3, Key: "dataset", Label: "Dataset"},
	{Index: 4, Key: "modality", Label: "Modality"},
	{Index: 5, Key: "problem-statement", Label: "Problem Statement"},
	{Index: 6, Key: "methodology", Label: "Methodology"},
	{Index: 7, Key: "key-findings", Label: "Key Findings"},
	{Index: 8, Key: "research-gap", Label: "Research Gap"},
	{Index: 9, Key: "future-directions", Label: "Future Directions"},
	{Index: 10, Key: "read-yourself", Label: "What Should You Read Yourself?"},
	{Index: 11, Key: "quick-references", Label: "Quick References"},
}

// Framework returns the twelve headings every analysis is split into,
// in prompt-template order. The returned slice is a copy.
func Framework() []SectionSpec {
	specs := make([]SectionSpec, SectionCount)
	copy(specs, frameworkSections[:])
	return specs
}
