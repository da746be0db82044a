package factory

import "go.uber.org/zap"

// Restore resets the composite parameter store to the snapshot taken at
// construction and regenerates the method bindings, since every binding
// closes over the current store. The calling sequence is re-derived as
// well; it depends only on the fixed structure of the components, so the
// recomputed sequence is identical every time.
//
// After Restore, every inherited method behaves exactly as it did directly
// after construction; no parameter edit survives.
func (m *CompositeModel) Restore() error {
	m.params = m.initParams.Copy()

	inherited, err := effectiveInheritance(m.features)
	if err != nil {
		return err
	}
	if err := m.bindMethods(inherited); err != nil {
		return err
	}

	// Any sequence warnings already fired at construction; re-derive
	// quietly.
	sequence, err := buildCallingSequence(m.features, zap.NewNop())
	if err != nil {
		return err
	}
	m.callingSequence = sequence
	return nil
}
