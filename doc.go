/*
Package aromatone is the backend of AromaTone, a cooking companion that pairs
recipes with music and ambience.

# Concept

The heart of the module is a wizard state engine. A wizard is a declarative
sequence of steps over a typed form record; every user interaction is an
explicit event (set a field, toggle a list value, next, previous) and the
engine answers with a new session snapshot without mutating the old one.
Step gates are a per-step rule table, and rendering is a pure function of the
snapshot.

Around the engine sit the adapters: session stores (memory, file, Redis), an
HTTP API with a server-sent event stream, a pass-through proxy for the AI
provider, recipe generators, platform OAuth and a terminal runner.

# Usage

The App type wires everything from a configuration:

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	app, err := aromatone.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	http.ListenAndServe(cfg.Addr(), app.Handler())

Library users who only need the engine can compose it directly:

	reg := wizard.NewRegistry()
	flows.Register(reg)
	engine := wizard.NewEngine(reg)

	sess, _ := engine.Start(ctx, flows.RecipeFlow, "")
	sess, outcome, err := engine.Dispatch(ctx, sess, wizard.SetField("desiredDish", "risotto"))
*/
package aromatone
