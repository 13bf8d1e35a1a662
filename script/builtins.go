package script

import "github.com/d5/tengo/v2"

func (vm *VM) builtins() map[string]*tengo.UserFunction {
	return map[string]*tengo.UserFunction{
		"wait":          vm.intCommand("wait", opWait),
		"sfx":           vm.intCommand("sfx", opSfx),
		"quake":         vm.intCommand("quake", opQuake),
		"heal":          vm.intCommand("heal", opHeal),
		"give_missiles": vm.intCommand("give_missiles", opMissiles),
		"boss_action":   vm.intCommand("boss_action", opBossAction),
		"actor_action":  vm.intCommand("actor_action", opActorAction),
		"freeze":        vm.noArgCommand("freeze", opFreeze),
		"unfreeze":      vm.noArgCommand("unfreeze", opUnfreeze),
		"end":           vm.noArgCommand("end", opEnd),
		"msg": {Name: "msg", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			text, ok := tengo.ToString(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "text", Expected: "string", Found: args[0].TypeName()}
			}
			vm.pending = append(vm.pending, command{op: opMsg, text: text})
			return tengo.UndefinedValue, nil
		}},
		"flag_set": {Name: "flag_set", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			n, ok := tengo.ToInt(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "flag", Expected: "int", Found: args[0].TypeName()}
			}
			vm.pending = append(vm.pending, command{op: opFlag, arg: n, on: !args[1].IsFalsy()})
			return tengo.UndefinedValue, nil
		}},
		// flag_on reads the world immediately, so branches see flags as of the start.
		"flag_on": {Name: "flag_on", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			n, ok := tengo.ToInt(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "flag", Expected: "int", Found: args[0].TypeName()}
			}
			if vm.world.Flag(n) {
				return tengo.TrueValue, nil
			}
			return tengo.FalseValue, nil
		}},
	}
}

func (vm *VM) intCommand(name string, op opcode) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		n, ok := tengo.ToInt(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "n", Expected: "int", Found: args[0].TypeName()}
		}
		vm.pending = append(vm.pending, command{op: op, arg: n})
		return tengo.UndefinedValue, nil
	}}
}

func (vm *VM) noArgCommand(name string, op opcode) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 0 {
			return nil, tengo.ErrWrongNumArguments
		}
		vm.pending = append(vm.pending, command{op: op})
		return tengo.UndefinedValue, nil
	}}
}
