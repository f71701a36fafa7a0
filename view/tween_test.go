package view

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenAlphaReachesTarget(t *testing.T) {
	node := NewSprite("blue", nil)
	node.SetAlpha(0.4)

	g := TweenAlpha(node, 1, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Alpha-1) > 0.01 {
		t.Errorf("Alpha = %f, want ~1", node.Alpha)
	}
}

func TestTweenScaleMarksDirty(t *testing.T) {
	node := NewText("score", "0 : 0", nil)
	node.SetScale(1.4, 1.4)
	node.transformDirty = false

	g := TweenScale(node, 1, 1, 0.5, ease.Linear)
	g.Update(0.25)

	if g.Done {
		t.Fatal("should not be done halfway")
	}
	if math.Abs(node.ScaleX-1.2) > 0.01 {
		t.Errorf("ScaleX = %f, want ~1.2", node.ScaleX)
	}
	if !node.transformDirty {
		t.Error("tween should mark the node dirty")
	}
}

func TestTweensReplaceAndDrop(t *testing.T) {
	node := NewSprite("red", nil)
	other := NewSprite("blue", nil)

	var tw Tweens
	tw.Start(TweenAlpha(node, 0, 1, ease.Linear))
	tw.Start(TweenAlpha(other, 0, 1, ease.Linear))
	tw.Start(TweenAlpha(node, 0.5, 0.5, ease.Linear)) // replaces the first

	if tw.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tw.Len())
	}

	tw.Update(0.5)
	if tw.Len() != 1 {
		t.Fatalf("Len = %d after the short tween finished, want 1", tw.Len())
	}
	if math.Abs(node.Alpha-0.5) > 0.01 {
		t.Errorf("Alpha = %f, want ~0.5", node.Alpha)
	}

	tw.Update(0.5)
	if tw.Len() != 0 {
		t.Errorf("Len = %d, want 0", tw.Len())
	}
}
