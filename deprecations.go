// Package deprecations tracks AI/ML model deprecation announcements
// published by multiple providers (Google, AWS Bedrock, Anthropic, OpenAI,
// etc.), normalizes them into a common record shape, and republishes them
// as structured feeds (raw JSON, JSON Feed, RSS).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package deprecations
