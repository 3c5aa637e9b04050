package database

import (
	"context"
	"testing"
)

func TestConnectDynamoDB(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

	client, err := ConnectDynamoDB(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatalf("expected client")
	}
	if got := client.Options().Region; got != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %s", got)
	}
	if got := client.Options().BaseEndpoint; got == nil || *got != "http://localhost:8000" {
		t.Fatalf("unexpected endpoint: %v", got)
	}
	if !IsLocal() {
		t.Fatalf("expected local mode")
	}
}
