// Package importers reads Bible text and entity seed files into the inputs
// accepted by services.ImportService.
//
// # Formats
//
//   - OSIS XML (osis.go): both container verses (<verse osisID="John.3.16">text</verse>)
//     and milestone verses (<verse sID="John.3.16"/>text<verse eID="John.3.16"/>).
//     Notes are dropped and whitespace is collapsed.
//   - YAML entity seeds (entities_yaml.go):
//
//     entities:
//     - name: Ponce Pilate
//     type: person
//     aliases: [Pilate]
//     summary: Préfet de Judée.
//     verses: ["Matthieu 27:2", "Jean 19:1"]
//
// # Usage
//
//	doc, err := importers.ParseOSIS(file)
//	result, err := importService.ImportVerses(doc.Verses, doc.Work)
//
//	seeds, err := importers.ParseEntitiesYAML(file)
//	result, err := importService.ImportEntities(seeds, translationID)
package importers
