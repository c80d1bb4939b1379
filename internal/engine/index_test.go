package engine

import (
	"testing"

	"investio/internal/models"
)

func TestFallbackIndexRate(t *testing.T) {
	tests := []struct {
		name  string
		index models.ReferenceIndex
		want  string
		ok    bool
	}{
		{"cdi", models.IndexCDI, "10.65", true},
		{"selic", models.IndexSelic, "10.75", true},
		{"ipca", models.IndexIPCA, "4.50", true},
		{"none", models.IndexNone, "0", false},
		{"unknown", models.ReferenceIndex("libor"), "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, ok := FallbackIndexRate(tt.index)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && !rate.Equal(dec(tt.want)) {
				t.Errorf("expected rate %s, got %s", tt.want, rate)
			}
		})
	}
}

func TestEffectiveAnnualRate(t *testing.T) {
	t.Run("pre_fixed_uses_nominal", func(t *testing.T) {
		rate, estimated := EffectiveAnnualRate(models.YieldTypePreFixed, models.IndexNone, dec("12.50"))
		if estimated {
			t.Error("pre-fixed rates are contractual, not estimated")
		}
		if !rate.Equal(dec("12.50")) {
			t.Errorf("expected 12.50, got %s", rate)
		}
	})

	t.Run("post_fixed_scales_index", func(t *testing.T) {
		// 110% of the 10.65 CDI fallback
		rate, estimated := EffectiveAnnualRate(models.YieldTypePostFixed, models.IndexCDI, dec("110"))
		if !estimated {
			t.Error("post-fixed rates rest on fallback estimates")
		}
		if !rate.Equal(dec("11.715")) {
			t.Errorf("expected 11.715, got %s", rate)
		}
	})

	t.Run("post_fixed_without_index_falls_back_to_nominal", func(t *testing.T) {
		rate, estimated := EffectiveAnnualRate(models.YieldTypePostFixed, models.IndexNone, dec("10"))
		if estimated {
			t.Error("expected no estimate flag without a resolvable index")
		}
		if !rate.Equal(dec("10")) {
			t.Errorf("expected 10, got %s", rate)
		}
	})
}

func TestProRataYield(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rate   string
		days   int
		want   string
	}{
		{"full_year", "1000.00", "10.00", 365, "100.00"},
		{"half_year_rounds_half_up", "1000.00", "10.00", 180, "49.32"},
		{"single_day", "1000.00", "10.00", 1, "0.27"},
		{"zero_days", "1000.00", "10.00", 0, "0.00"},
		{"zero_amount", "0.00", "10.00", 365, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProRataYield(dec(tt.amount), dec(tt.rate), tt.days)
			if !got.Equal(dec(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
