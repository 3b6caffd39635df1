// raindrop-mcp is a Model Context Protocol server exposing the Raindrop.io
// bookmarking service as tools for an AI assistant host. It speaks MCP over
// stdio and forwards every tool call to the Raindrop.io REST API.
package main

func main() {
	Execute()
}
