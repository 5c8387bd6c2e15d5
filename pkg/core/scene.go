package core

// Scene provides everything the integrator needs to trace rays: the root of
// the object graph, the designated light sources, and the background
// radiance for rays that escape the scene.
type Scene interface {
	// Root returns the top of the object tree, typically a BVH node
	Root() Hittable
	// Lights returns the light-shaped objects used for importance sampling,
	// or nil when the scene has no designated lights
	Lights() Sampleable
	// Background returns the radiance carried by a ray that hits nothing
	Background(ray Ray) Vec3
}
