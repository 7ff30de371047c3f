// Package core contains the business logic for the news intelligence API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Article, AnalysisResult, IndustryStats)
// - collector: RSS feed collection across configured news sources
// - analysis: AI-backed article analysis with graceful degradation
// - report: Deterministic plain-text report compilation
// - pipeline: Orchestration of one collect-analyze-compile-store run
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, storage)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "news-intel-api/core/collector"
//	    "news-intel-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	svc := collector.NewService(deps, nil)
//
//	// Collect articles for an industry
//	articles, err := svc.Collect(ctx, "banking")
package core
