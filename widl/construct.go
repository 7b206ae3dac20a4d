package widl

// Construct is a named top-level or member WebIDL entity. Every concrete
// construct embeds baseConstruct and overrides only the methods its kind
// actually needs; only the container constructs (Interface, Dictionary,
// Callback) override FindMember(s) and FindMethod(s); FindArgument(s) is
// overridden by those same containers and by the other constructs that
// carry an argument list (Operation, ExtendedAttribute).
type Construct interface {
	Production
	IdlType() string
	Name() (string, bool)
	Parent() (Construct, bool)
	ExtendedAttributes() []*ExtendedAttribute
	Constructors() []*ExtendedAttribute
	ComplexityFactor() int
	MethodName() (string, bool)
	MethodNames() []string
	Arguments() *ArgumentList
	Members() []Construct
	FindMember(name string) Construct
	FindMembers(name string) []Construct
	FindMethod(name string, argNames []string) Construct
	FindMethods(name string, argNames []string) []Construct
	FindArgument(name string, searchMembers bool) Construct
	FindArguments(name string, searchMembers bool) []Construct
	MatchesArgumentNames(names []string) bool
}

// baseConstruct implements every Construct method as a no-op default.
// Concrete constructs embed this and shadow only what applies to them.
type baseConstruct struct {
	parts    []part
	idlType  string
	name     *string
	parent   Construct
	extAttrs []*ExtendedAttribute
}

func (b *baseConstruct) String() string { return renderParts(b.parts) }
func (b *baseConstruct) Parts() []part  { return b.parts }

// partsAppender lets the dispatcher attach loose trailing trivia to the
// final construct of a parse without widening the Construct interface.
type partsAppender interface{ appendPart(p part) }

func (b *baseConstruct) appendPart(p part) { b.parts = append(b.parts, p) }

func (b *baseConstruct) IdlType() string { return b.idlType }

func (b *baseConstruct) Name() (string, bool) {
	if b.name == nil {
		return "", false
	}
	return *b.name, true
}
func (b *baseConstruct) Parent() (Construct, bool) {
	if b.parent == nil {
		return nil, false
	}
	return b.parent, true
}
func (b *baseConstruct) ExtendedAttributes() []*ExtendedAttribute { return b.extAttrs }

// Constructors filters this construct's own extended attributes for the
// ones recognized as constructor declarations (idl_type=="constructor").
func (b *baseConstruct) Constructors() []*ExtendedAttribute {
	var out []*ExtendedAttribute
	for _, a := range b.extAttrs {
		if a.IsConstructor() {
			out = append(out, a)
		}
	}
	return out
}

func (b *baseConstruct) ComplexityFactor() int                                  { return 1 }
func (b *baseConstruct) MethodName() (string, bool)                             { return "", false }
func (b *baseConstruct) MethodNames() []string                                  { return nil }
func (b *baseConstruct) Arguments() *ArgumentList                               { return nil }
func (b *baseConstruct) Members() []Construct                                   { return nil }
func (b *baseConstruct) FindMember(name string) Construct                       { return nil }
func (b *baseConstruct) FindMembers(name string) []Construct                    { return nil }
func (b *baseConstruct) FindMethod(name string, argNames []string) Construct    { return nil }
func (b *baseConstruct) FindMethods(name string, argNames []string) []Construct { return nil }
func (b *baseConstruct) FindArgument(name string, searchMembers bool) Construct { return nil }
func (b *baseConstruct) FindArguments(name string, searchMembers bool) []Construct {
	return nil
}
func (b *baseConstruct) MatchesArgumentNames(names []string) bool { return len(names) == 0 }

// containerConstruct adds the member-search behavior shared by
// Interface and Dictionary, which embed this instead of baseConstruct
// directly. Callback delegates to its Interface instead.
type containerConstruct struct {
	baseConstruct
	members []Construct
}

func (c *containerConstruct) Members() []Construct { return c.members }

// ComplexityFactor is this construct's own weight plus the sum over its
// members, so factors stay additive through arbitrary nesting.
func (c *containerConstruct) ComplexityFactor() int {
	total := 1
	for _, m := range c.members {
		total += m.ComplexityFactor()
	}
	return total
}

func (c *containerConstruct) FindMember(name string) Construct {
	for _, m := range c.members {
		if n, ok := m.Name(); ok && n == name {
			return m
		}
	}
	return nil
}

func (c *containerConstruct) FindMembers(name string) []Construct {
	var out []Construct
	for _, m := range c.members {
		if n, ok := m.Name(); ok && n == name {
			out = append(out, m)
		}
	}
	return out
}

func (c *containerConstruct) FindMethod(name string, argNames []string) Construct {
	for _, m := range c.members {
		if m.IdlType() != "method" {
			continue
		}
		n, ok := m.Name()
		if !ok || n != name {
			continue
		}
		if argNames == nil || m.MatchesArgumentNames(argNames) {
			return m
		}
	}
	return nil
}

func (c *containerConstruct) FindMethods(name string, argNames []string) []Construct {
	var out []Construct
	for _, m := range c.members {
		if m.IdlType() != "method" {
			continue
		}
		n, ok := m.Name()
		if !ok || n != name {
			continue
		}
		if argNames == nil || m.MatchesArgumentNames(argNames) {
			out = append(out, m)
		}
	}
	return out
}

func (c *containerConstruct) FindArgument(name string, searchMembers bool) Construct {
	if args := c.Arguments(); args != nil {
		if a := args.findByName(name); a != nil {
			return a
		}
	}
	if !searchMembers {
		return nil
	}
	for _, m := range c.members {
		if a := m.FindArgument(name, false); a != nil {
			return a
		}
	}
	return nil
}

func (c *containerConstruct) FindArguments(name string, searchMembers bool) []Construct {
	var out []Construct
	if args := c.Arguments(); args != nil {
		out = append(out, args.findAllByName(name)...)
	}
	if searchMembers {
		for _, m := range c.members {
			out = append(out, m.FindArguments(name, false)...)
		}
	}
	return out
}
