// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

package mongo

import "go.mongodb.org/mongo-driver/mongo"

// # Write Summaries
//
// The API reports store writes back to clients as counts, mirroring the
// driver's result objects. These typed summaries are the only shape write
// results take across all domains.

// UpdateSummary reports the outcome of an update or upsert write.
type UpdateSummary struct {
	// MatchedCount is the number of documents the filter selected.
	MatchedCount int64 `json:"matchedCount"`
	// ModifiedCount is the number of documents actually changed.
	ModifiedCount int64 `json:"modifiedCount"`
	// UpsertedID is the id of a newly upserted document, if any.
	UpsertedID interface{} `json:"upsertedId,omitempty"`
}

// NewUpdateSummary converts a driver update result.
func NewUpdateSummary(result *mongo.UpdateResult) *UpdateSummary {
	return &UpdateSummary{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedID:    result.UpsertedID,
	}
}

// DeleteSummary reports the outcome of a delete write.
//
// A DeletedCount of 0 is a successful response, not an error: deleting an
// absent document is a no-op.
type DeleteSummary struct {
	DeletedCount int64 `json:"deletedCount"`
}

// NewDeleteSummary converts a driver delete result.
func NewDeleteSummary(result *mongo.DeleteResult) *DeleteSummary {
	return &DeleteSummary{DeletedCount: result.DeletedCount}
}

// InsertSummary reports the outcome of a create operation.
//
// Create-if-absent endpoints reuse this shape for their duplicate
// suppression contract: an existing natural key yields a nil InsertedID and
// an explanatory message with a 200 status — never an error.
type InsertSummary struct {
	InsertedID interface{} `json:"insertedId"`
	Message    string      `json:"message,omitempty"`
}
