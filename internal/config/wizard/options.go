package wizard

import "github.com/charmbracelet/huh"

// LocationOption represents a Hetzner Cloud datacenter location.
type LocationOption struct {
	Value       string
	Label       string
	Description string
}

// ServerTypeOption represents a Hetzner Cloud server type.
type ServerTypeOption struct {
	Value       string
	Label       string
	Description string
}

// ModelOption represents an Ollama model.
type ModelOption struct {
	Value       string
	Label       string
	Description string
}

// Locations contains the datacenter locations that offer GPU server types.
var Locations = []LocationOption{
	{Value: "fsn1", Label: "fsn1", Description: "Falkenstein, Germany"},
	{Value: "nbg1", Label: "nbg1", Description: "Nuremberg, Germany"},
	{Value: "hel1", Label: "hel1", Description: "Helsinki, Finland"},
}

// GPUServerTypes contains the dedicated GPU server types.
var GPUServerTypes = []ServerTypeOption{
	{Value: "gex44", Label: "gex44", Description: "RTX 4000 SFF Ada, 20GB VRAM, 64GB RAM"},
	{Value: "gex130", Label: "gex130", Description: "RTX 6000 Ada, 48GB VRAM, 128GB RAM"},
}

// Models contains commonly used Ollama models. Any model name the instance
// can pull is valid; these are just the suggestions shown first.
var Models = []ModelOption{
	{Value: "llama3.1:8b", Label: "llama3.1:8b", Description: "Meta Llama 3.1, 8B parameters"},
	{Value: "llama3.1:70b", Label: "llama3.1:70b", Description: "Meta Llama 3.1, 70B parameters (48GB VRAM)"},
	{Value: "mistral:7b", Label: "mistral:7b", Description: "Mistral 7B"},
	{Value: "qwen2.5-coder:14b", Label: "qwen2.5-coder:14b", Description: "Qwen 2.5 Coder, 14B parameters"},
	{Value: "gemma2:9b", Label: "gemma2:9b", Description: "Google Gemma 2, 9B parameters"},
	{Value: modelCustom, Label: "custom...", Description: "Type a model name"},
}

// modelCustom is the sentinel select value that switches to free-form input.
const modelCustom = "custom"

// LocationsToOptions converts the location list to huh select options.
func LocationsToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(Locations))
	for i, loc := range Locations {
		opts[i] = huh.NewOption(loc.Label+" - "+loc.Description, loc.Value)
	}
	return opts
}

// ServerTypesToOptions converts the server type list to huh select options.
func ServerTypesToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(GPUServerTypes))
	for i, st := range GPUServerTypes {
		opts[i] = huh.NewOption(st.Label+" - "+st.Description, st.Value)
	}
	return opts
}

// ModelsToOptions converts the model list to huh select options.
func ModelsToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(Models))
	for i, m := range Models {
		opts[i] = huh.NewOption(m.Label+" - "+m.Description, m.Value)
	}
	return opts
}
