// Package dataset describes the local face-mask dataset layout: three
// split directories (train, val, test), each holding the two class
// directories (WithMask, WithoutMask) of png/jpg/jpeg images.
//
// Scan walks the layout and counts images without judging missing
// directories, so the setup checker can stay advisory while the uploader
// treats any gap as fatal. WriteDescriptor generates the data.yaml
// summary at the dataset root.
package dataset
