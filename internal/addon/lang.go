package addon

// LangFile builds the en_US.lang document mapping engine display keys to the
// mob's original display name. One key=value line per string, UTF-8.
func LangFile(id, displayName string) string {
	return "entity.custom:" + id + ".name=" + displayName + "\n" +
		"item.spawn_egg.entity.custom:" + id + ".name=Spawn " + displayName + "\n"
}
