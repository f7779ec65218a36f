package domain

import (
	"strings"
	"testing"
)

func TestGenerateSocialPostHashtags(t *testing.T) {
	post := GenerateSocialPost("Sales Spark Pro", "LinkedIn")

	if post.Hashtags != "#SalesSparkPro #LinkedIn #GrowthHacking #SaaS #Productivity" {
		t.Fatalf("unexpected hashtags %q", post.Hashtags)
	}
	if !strings.Contains(post.Caption, "Sales Spark Pro empowers teams") {
		t.Fatalf("caption should name the product: %q", post.Caption)
	}
}

func TestGenerateEmailTrimsInputs(t *testing.T) {
	email := GenerateEmail("  Dana ", " pipeline reviews ", " SalesSpark ")

	if email.Subject != "Quick idea to improve your pipeline reviews" {
		t.Fatalf("unexpected subject %q", email.Subject)
	}
	if !strings.HasPrefix(email.Body, "Hi Dana,\n\n") {
		t.Fatalf("unexpected greeting %q", email.Body)
	}
	if !strings.HasSuffix(email.Body, "Best regards,\nSalesSpark AI Team\n") {
		t.Fatalf("unexpected sign-off %q", email.Body)
	}
	if email.FollowUpTip != emailFollowUpTip {
		t.Fatalf("unexpected tip %q", email.FollowUpTip)
	}
}

func TestGeneratePitch(t *testing.T) {
	pitch := GeneratePitch("SalesSpark", "Startup founders")

	if pitch.Problem != "Startup founders often face fragmented processes that kill team productivity and slow down revenue cycles." {
		t.Fatalf("unexpected problem %q", pitch.Problem)
	}
	if !strings.HasPrefix(pitch.ValueProp, "SalesSpark unifies") {
		t.Fatalf("unexpected value prop %q", pitch.ValueProp)
	}
}

func TestQuickMarketSnapshot(t *testing.T) {
	snap := QuickMarketSnapshot("Fintech")
	if snap.Insight != "Fintech markets are currently rewarding vertical integration and specialized service providers." {
		t.Fatalf("unexpected insight %q", snap.Insight)
	}
}
