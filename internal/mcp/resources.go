// ABOUTME: MCP resource implementations for the activity ledger.
// ABOUTME: Provides ledger://recent, ledger://today, and ledger://week resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mtendies/ledger/internal/ledger"
	"github.com/mtendies/ledger/internal/models"
)

func (s *Server) registerResources() {
	// ledger://recent - Last 10 activities
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ledger://recent",
		Name:        "Recent Activities",
		Description: "Last 10 logged activities",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// ledger://today - Everything logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ledger://today",
		Name:        "Today's Activities",
		Description: "All activities logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// ledger://week - Current week's activities with stats and narrative
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ledger://week",
		Name:        "This Week",
		Description: "Current week's activities, counts, and narrative summaries",
		MIMEType:    "application/json",
	}, s.handleWeekResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	activities := s.ledger.Recent(10)

	result := map[string]interface{}{
		"activities": activities,
		"count":      len(activities),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "ledger://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := time.Now().Format(models.DateLayout)
	activities := s.ledger.ForDate(today)

	result := map[string]interface{}{
		"date":       today,
		"activities": activities,
		"count":      len(activities),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "ledger://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	week := models.CurrentWeek()
	activities := s.ledger.ForWeek(week)

	result := map[string]interface{}{
		"week_of":    week,
		"activities": activities,
		"stats":      ledger.WeekSummary(week, activities),
		"narrative":  ledger.WeeklyNarrative(activities),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "ledger://week",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
