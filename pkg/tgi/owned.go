package tgi

// Owned is a key slot held by a single parent. Every effective mutation
// calls the parent's notify callback exactly once; assigning the current
// value is a no-op.
type Owned struct {
	key    Key
	notify func()
}

// NewOwned returns a slot holding k that reports to notify.
func NewOwned(k Key, notify func()) *Owned {
	return &Owned{key: k, notify: notify}
}

// Get returns the current key.
func (o *Owned) Get() Key { return o.key }

// Set replaces the key.
func (o *Owned) Set(k Key) {
	if k == o.key {
		return
	}
	o.key = k
	o.changed()
}

// SetType replaces the type field.
func (o *Owned) SetType(t uint32) {
	k := o.key
	k.Type = t
	o.Set(k)
}

// SetGroup replaces the group field.
func (o *Owned) SetGroup(g uint32) {
	k := o.key
	k.Group = g
	o.Set(k)
}

// SetInstance replaces the instance field.
func (o *Owned) SetInstance(i uint64) {
	k := o.key
	k.Instance = i
	o.Set(k)
}

// Bind rewires the slot to a new parent.
func (o *Owned) Bind(notify func()) { o.notify = notify }

// CloneWithNotify returns an independent slot reporting to notify.
func (o *Owned) CloneWithNotify(notify func()) *Owned {
	return &Owned{key: o.key, notify: notify}
}

// Equal compares the held keys.
func (o *Owned) Equal(other *Owned) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.key == other.key
}

func (o *Owned) String() string { return o.key.String() }

func (o *Owned) changed() {
	if o.notify != nil {
		o.notify()
	}
}
