package cache

import (
	"fmt"
	"log"
)

// Invalidator is what mutation handlers depend on.
type Invalidator interface {
	Trigger(tags, paths []string) error
}

// Revalidator invalidates tags first, then paths. It stops at the first
// failure; anything already invalidated stays invalidated.
type Revalidator struct {
	Tags  *TagStore
	Pages *PathStorage
}

func NewRevalidator() *Revalidator {
	return &Revalidator{Tags: NewTagStore(), Pages: NewPathStorage()}
}

func (r *Revalidator) Trigger(tags, paths []string) error {
	for _, t := range tags {
		if err := r.Tags.RevalidateTag(t); err != nil {
			return fmt.Errorf("tag %q: %w", t, err)
		}
	}
	for _, p := range paths {
		if err := r.Pages.RevalidatePath(p); err != nil {
			return fmt.Errorf("path %q: %w", p, err)
		}
	}
	return nil
}

// Touch runs the trigger after a successful write; failures are only logged.
func Touch(inv Invalidator, tags []string, paths ...string) {
	if inv == nil {
		return
	}
	if err := inv.Trigger(tags, paths); err != nil {
		log.Printf("[WARN] revalidate %v %v: %v", tags, paths, err)
	}
}
