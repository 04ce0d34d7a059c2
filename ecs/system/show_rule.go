package system

import (
	"fmt"
	"math"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/minimapicons/ecs"
	"github.com/milk9111/minimapicons/ecs/component"
)

// Show rules are tengo expressions evaluated per entity. They see the
// variables below plus the text and math stdlib modules.
const showRulePrelude = `text := import("text")
math := import("math")
`

var showRuleVars = map[string]any{
	"category": "",
	"league":   "",
	"path":     "",
	"kind":     "",
	"priority": 0,
	"valid":    false,
	"hidden":   false,
	"distance": 0.0,
}

type showRule struct {
	expr     string
	compiled *tengo.Compiled
}

// ShowRuleSystem sets MapIcon.Visible from the show rule of the icon's kind.
// Kinds without a rule are always shown.
type ShowRuleSystem struct {
	rules  map[string]*showRule
	failed map[string]bool
}

func NewShowRuleSystem(rules map[string]string) (*ShowRuleSystem, error) {
	s := &ShowRuleSystem{failed: map[string]bool{}}
	if err := s.SetRules(rules); err != nil {
		return nil, err
	}
	return s, nil
}

// SetRules compiles every rule and swaps them in only if all compile.
func (s *ShowRuleSystem) SetRules(rules map[string]string) error {
	compiled := make(map[string]*showRule, len(rules))
	for kind, expr := range rules {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}
		c, err := compileShowRule(expr)
		if err != nil {
			return fmt.Errorf("show rule %q: %w", kind, err)
		}
		compiled[kind] = &showRule{expr: expr, compiled: c}
	}
	s.rules = compiled
	s.failed = map[string]bool{}
	return nil
}

func compileShowRule(expr string) (*tengo.Compiled, error) {
	script := tengo.NewScript([]byte(showRulePrelude + "__show := (" + expr + ")\n"))
	for name, def := range showRuleVars {
		if err := script.Add(name, def); err != nil {
			return nil, err
		}
	}
	script.SetImports(stdlib.GetModuleMap("text", "math"))
	return script.Compile()
}

func (r *showRule) eval(vars map[string]any) (bool, error) {
	for name, v := range vars {
		if err := r.compiled.Set(name, v); err != nil {
			return false, err
		}
	}
	if err := r.compiled.Run(); err != nil {
		return false, err
	}
	return r.compiled.Get("__show").Bool(), nil
}

func (s *ShowRuleSystem) Update(w *ecs.World) {
	px, py, hasPlayer := 0.0, 0.0, false
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if pt, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			px, py, hasPlayer = pt.X, pt.Y, true
		}
	}

	for _, e := range ecs.Query(w, component.MapIconComponent.Kind(), component.EntityInfoComponent.Kind()) {
		icon, _ := ecs.Get(w, e, component.MapIconComponent.Kind())
		rule, ok := s.rules[icon.Kind]
		if !ok {
			icon.Visible = true
			continue
		}
		info, _ := ecs.Get(w, e, component.EntityInfoComponent.Kind())

		valid := true
		if tr, ok := ecs.Get(w, e, component.TrackingComponent.Kind()); ok {
			valid = tr.Valid
		}
		distance := math.Inf(1)
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok && hasPlayer {
			distance = math.Hypot(t.X-px, t.Y-py)
		}

		visible, err := rule.eval(map[string]any{
			"category": info.Category.String(),
			"league":   string(info.League),
			"path":     info.Path,
			"kind":     icon.Kind,
			"priority": icon.Priority,
			"valid":    valid,
			"hidden":   icon.Hidden,
			"distance": distance,
		})
		if err != nil {
			if !s.failed[icon.Kind] {
				sysLog().Warn().Err(err).Str("kind", icon.Kind).Str("rule", rule.expr).Msg("show rule failed")
				s.failed[icon.Kind] = true
			}
			icon.Visible = false
			continue
		}
		icon.Visible = visible
	}
}
