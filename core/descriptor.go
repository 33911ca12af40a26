package core

// RequestDescriptorType tags every descriptor so a downstream consumer
// knows to dispatch it as a plain HTTP request.
const RequestDescriptorType = "@builder.io/core:Request"

const (
	DescriptorOptionSeller  = "seller"
	DescriptorOptionCluster = "cluster"
)

type RequestSpec struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers"`
}

// RequestDescriptor describes an HTTP call without executing it. Options
// correlates the resource kind with the id the request resolves.
type RequestDescriptor struct {
	Type    string            `json:"@type"`
	Request RequestSpec       `json:"request"`
	Options map[string]string `json:"options"`
}

func NewRequestDescriptor(url string, headers map[string]string, kind string, id string) RequestDescriptor {
	return RequestDescriptor{
		Type: RequestDescriptorType,
		Request: RequestSpec{
			URL:     url,
			Headers: cloneStringMap(headers),
		},
		Options: map[string]string{kind: id},
	}
}

func cloneStringMap(input map[string]string) map[string]string {
	if len(input) == 0 {
		return map[string]string{}
	}
	output := make(map[string]string, len(input))
	for key, value := range input {
		output[key] = value
	}
	return output
}
