package ecs

import (
	"fmt"
	"reflect"
)

var (
	nextTypeID ComponentID
	typeIDs    = make(map[reflect.Type]ComponentID, MaxComponents)
)

// TypeFor returns the process-stable ComponentID for the variant T. The
// first call for a variant allocates the next unused ID; every later call
// returns the same value. It panics once more than MaxComponents distinct
// variants have been registered.
//
// Like the rest of the package, the registry is not safe for concurrent
// use.
func TypeFor[T Component]() ComponentID {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := typeIDs[t]; ok {
		return id
	}
	if int(nextTypeID) >= MaxComponents {
		panic(fmt.Sprintf("ecs: cannot register %s: component type capacity (%d) exhausted", t, MaxComponents))
	}
	id := nextTypeID
	typeIDs[t] = id
	nextTypeID++
	return id
}

// resetTypeRegistry clears all registered variants. Entities created before
// a reset hold slots keyed by the old IDs, so this is only for tests.
func resetTypeRegistry() {
	nextTypeID = 0
	typeIDs = make(map[reflect.Type]ComponentID, MaxComponents)
}
