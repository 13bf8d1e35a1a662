package entity

import (
	"fmt"

	"github.com/milk9111/actorsim/ecs"
	"github.com/milk9111/actorsim/ecs/system"
	"github.com/milk9111/actorsim/levels"
	"github.com/milk9111/actorsim/prefabs"
	"github.com/milk9111/actorsim/script"
)

// Services are the collaborators a world is wired to. Nil members fall back to silent
// defaults.
type Services struct {
	Sound   ecs.SoundPlayer
	Input   ecs.Controller
	Scripts script.Loader
}

// Sim is a fully wired world together with its script runner.
type Sim struct {
	World   *ecs.World
	Scripts *script.VM
}

// BuildWorld creates a world for table, installs the step systems and loads lvl.
func BuildWorld(table *prefabs.NPCTable, lvl *levels.Level, seed int32, svc Services) (*Sim, error) {
	if table == nil {
		return nil, fmt.Errorf("entity: build world: nil table")
	}
	w := ecs.NewWorld(table, seed)
	if svc.Sound != nil {
		w.SetSound(svc.Sound)
	}
	if svc.Input != nil {
		w.SetInput(svc.Input)
	}

	vm := script.NewVM(w, svc.Scripts)
	w.SetScripts(vm)
	if err := system.Install(w, vm); err != nil {
		return nil, err
	}
	if lvl != nil {
		if err := LoadLevelToWorld(w, lvl); err != nil {
			return nil, err
		}
	}
	return &Sim{World: w, Scripts: vm}, nil
}

// ReloadTable swaps in a new table after validating it against the registered
// behaviors. Live actors keep their stats; new spawns use the new table.
func (s *Sim) ReloadTable(table *prefabs.NPCTable) error {
	if s == nil || s.World == nil {
		return fmt.Errorf("entity: reload: nil sim")
	}
	if err := system.ValidateTable(table); err != nil {
		return err
	}
	s.World.SetTable(table)
	return nil
}
