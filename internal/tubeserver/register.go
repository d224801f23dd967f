// Package tubeserver wires the transcript engine to the MCP surface:
// two tools, two resources, and two prompt templates.
package tubeserver

import "github.com/modelcontextprotocol/go-sdk/mcp"

// RegisterAll registers every tool, resource, and prompt on the given server.
func RegisterAll(server *mcp.Server) {
	registerTranscriptDownload(server)
	registerTranscriptList(server)
	registerResources(server)
	registerPrompts(server)
}
