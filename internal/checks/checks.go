package checks

import (
	"strings"

	"github.com/sokinpui/imgcheck/internal/fs"
	"github.com/sokinpui/imgcheck/model"
)

// Targets are the component files inspected on every run, in report order.
var Targets = []model.Target{
	{
		Name:    "MessageInput.svelte",
		RelPath: "src/lib/components/chat/MessageInput.svelte",
		Checks: []model.Check{
			{Label: "Default value set to true", Needle: "export let imageGenerationEnabled = true;"},
			{Label: "Button visibility logic updated", Needle: "$config?.features?.enable_image_generation"},
		},
	},
	{
		Name:    "Chat.svelte",
		RelPath: "src/lib/components/chat/Chat.svelte",
		Checks: []model.Check{
			{Label: "Default value set to true", Needle: "let imageGenerationEnabled = true;"},
		},
	},
}

// Evaluate runs every check in targets against files under the resolver's
// base directory. A missing file is recorded, not an error; a file that
// exists but cannot be read aborts the run.
func Evaluate(resolver *fs.PathResolver, targets []model.Target) (model.Report, error) {
	report := model.Report{Files: make([]model.FileReport, 0, len(targets))}

	for _, target := range targets {
		fr, err := evaluateTarget(resolver.Resolve(target.RelPath), target)
		if err != nil {
			return model.Report{}, err
		}
		report.Files = append(report.Files, fr)
	}
	return report, nil
}

func evaluateTarget(path string, target model.Target) (model.FileReport, error) {
	fr := model.FileReport{Name: target.Name, Path: path}
	if !fs.Exists(path) {
		return fr, nil
	}

	content, err := fs.ReadText(path)
	if err != nil {
		return model.FileReport{}, err
	}

	fr.Found = true
	fr.Results = make([]model.CheckResult, len(target.Checks))
	for i, c := range target.Checks {
		fr.Results[i] = model.CheckResult{
			Label:  c.Label,
			Needle: c.Needle,
			Passed: strings.Contains(content, c.Needle),
		}
	}
	return fr, nil
}
