package service

import (
	"leaguedecks-backend/internal/curation"
	"leaguedecks-backend/internal/model"
	leaguedecksv1 "leaguedecks-backend/proto/leaguedecks/v1"
)

func executionToProto(record model.ExecutionRecord) *leaguedecksv1.Execution {
	out := &leaguedecksv1.Execution{
		Id:            record.ID,
		Status:        string(record.Status),
		Phase:         string(record.Phase),
		TargetDate:    record.TargetDate,
		Force:         record.Force,
		StartedAt:     record.StartedAt.UnixMilli(),
		DurationHuman: record.DurationHuman,
		Logs:          record.Logs,
		Ok:            record.OK,
		Error:         record.Error,
	}
	if record.EndedAt != nil {
		out.EndedAt = record.EndedAt.UnixMilli()
	}
	if record.Summary != nil {
		out.Summary = &leaguedecksv1.RunSummary{
			DateKey:       record.Summary.DateKey,
			ProbedEvents:  int32(record.Summary.ProbedEvents),
			NewEvents:     int32(record.Summary.NewEvents),
			CollectedRows: int32(record.Summary.CollectedRows),
			Categories:    countsToProto(record.Summary.Categories),
		}
	}
	return out
}

// countsToProto lists categories in model.Categories order, categories missing from counts are
// left out.
func countsToProto(counts map[model.Category]model.CategoryCounts) []*leaguedecksv1.CategoryCounts {
	var out []*leaguedecksv1.CategoryCounts
	for _, category := range model.Categories {
		c, ok := counts[category]
		if !ok {
			continue
		}
		out = append(out, &leaguedecksv1.CategoryCounts{
			Category:    string(category),
			Events:      int32(c.Events),
			Rankings:    int32(c.Rankings),
			Deckable:    int32(c.Deckable),
			ImageStored: int32(c.ImageStored),
			Snapshotted: c.Snapshotted,
		})
	}
	return out
}

func resultToProto(result curation.Result) *leaguedecksv1.AssignDeckNamesResponse {
	out := &leaguedecksv1.AssignDeckNamesResponse{}
	for _, u := range result.Updated {
		out.Updated = append(out.Updated, &leaguedecksv1.DeckNameUpdate{
			GroupId:    u.GroupID,
			RankingId:  u.RankingID,
			DeckName:   u.DeckName,
			Suggestion: u.Suggestion,
		})
	}
	for _, f := range result.Failed {
		out.Failed = append(out.Failed, &leaguedecksv1.DeckNameFailure{
			GroupId: f.GroupID,
			Error:   f.Error,
		})
	}
	return out
}
